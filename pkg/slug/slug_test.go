package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"T-Shirts", "t-shirts"},
		{"Classic Crew Neck Tee", "classic-crew-neck-tee"},
		{"ALL UPPER CASE", "all-upper-case"},
		{"Kadın Giyim", "kadin-giyim"},
		{"Çocuk Ürünleri", "cocuk-urunleri"},
		{"Güneş Gözlüğü", "gunes-gozlugu"},
		{"İstanbul", "istanbul"},
		{"Crème Brûlée", "creme-brulee"},
		{"Straße", "strasse"},
		{"Hello!!! World???", "hello-world"},
		{"price: $100", "price-100"},
		{"one & two", "one-two"},
		{"  --leading and trailing--  ", "leading-and-trailing"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Generate(tt.input))
		})
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	once := Generate("Polo Shirts & Tops")
	assert.Equal(t, once, Generate(once))
}
