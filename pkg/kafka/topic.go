package kafka

import "strings"

// TopicPrefix namespaces every topic of the platform.
const TopicPrefix = "ecommerce"

// Topic joins the prefix and segments with dots, e.g.
// Topic("catalog", "review", "created") is "ecommerce.catalog.review.created".
func Topic(segments ...string) string {
	return strings.Join(append([]string{TopicPrefix}, segments...), ".")
}
