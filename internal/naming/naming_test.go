package naming

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test plan:
// 1. Word boundaries, casing and plural suffixes on known inputs
// 2. Empty and punctuation-only inputs yield empty variants that fail validation
// 3. Camel is always Pascal with its first rune lower-cased (random inputs)
//    and validation rejects exactly the leading-digit and reserved names
// 4. FromPascal(Derive(raw).Pascal) reproduces the same variants (random inputs)
// 5. Leading digits and reserved words are rejected
// 6. Package helpers

func TestDerive(t *testing.T) {
	tests := []struct {
		raw  string
		want Variants
	}{
		{"order item", Variants{"OrderItem", "orderItem", "OrderItems", "orderItems"}},
		{"product", Variants{"Product", "product", "Products", "products"}},
		{"Product", Variants{"Product", "product", "Products", "products"}},
		{"product-item", Variants{"ProductItem", "productItem", "ProductItems", "productItems"}},
		{"USER_profile", Variants{"UserProfile", "userProfile", "UserProfiles", "userProfiles"}},
		{"  leading and trailing  ", Variants{"LeadingAndTrailing", "leadingAndTrailing", "LeadingAndTrailings", "leadingAndTrailings"}},
		{"v2 api", Variants{"V2Api", "v2Api", "V2Apis", "v2Apis"}},
		{"café menu", Variants{"CaféMenu", "caféMenu", "CaféMenus", "caféMenus"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := Derive(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, got.Validate())
		})
	}
}

func TestDerive_EmptyInput(t *testing.T) {
	// Test: inputs without letters or digits produce empty variants
	for _, raw := range []string{"", " ", "---", "!@#$%^&*()", "_ . _"} {
		t.Run(fmt.Sprintf("%q", raw), func(t *testing.T) {
			got := Derive(raw)
			assert.Equal(t, Variants{}, got)

			err := got.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrEmptyModuleName)
		})
	}
}

func TestDerive_PropertyCamelProjection(t *testing.T) {
	// Test: for random printable inputs with an alphanumeric rune,
	// Camel is Pascal with the first rune lower-cased
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		raw := randomName(rng)
		t.Run(fmt.Sprintf("random_%d", i), func(t *testing.T) {
			v := Derive(raw)
			require.NotEmpty(t, v.Pascal, "input %q", raw)

			assert.Equal(t, strings.ToLower(v.Pascal[:1])+v.Pascal[1:], v.Camel)
			assert.Equal(t, v.Pascal+"s", v.PluralPascal)
			assert.Equal(t, v.Camel+"s", v.PluralCamel)
			assert.True(t, unicode.IsUpper(rune(v.Pascal[0])) || unicode.IsDigit(rune(v.Pascal[0])))

			err := v.Validate()
			if unicode.IsDigit(rune(v.Pascal[0])) || IsReserved(v.Camel) || IsReserved(v.PluralCamel) {
				assert.ErrorIs(t, err, ErrInvalidModuleName, "input %q", raw)
			} else {
				assert.NoError(t, err, "input %q", raw)
			}

			// Re-deriving from Pascal keeps the same camel projection
			assert.Equal(t, v, FromPascal(v.Pascal))
			assert.Equal(t, v.Camel, FromPascal(v.Pascal).Camel)
		})
	}
}

func TestValidate_RejectsUnusableNames(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"leading digit", "9lives"},
		{"leading digit after separator", "  2fast"},
		{"keyword class", "class"},
		{"keyword new", "New"},
		{"keyword int", "int"},
		{"keyword package", "package"},
		{"literal null", "null"},
		{"plural is keyword", "clas"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Derive(tt.raw)
			require.NotEmpty(t, v.Pascal)

			err := v.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidModuleName)
			assert.NotErrorIs(t, err, ErrEmptyModuleName)
		})
	}
}

func TestValidate_AcceptsNamesContainingKeywords(t *testing.T) {
	// Test: only whole identifiers are reserved
	for _, raw := range []string{"classroom", "new order", "interface item", "record", "v2"} {
		assert.NoError(t, Derive(raw).Validate(), raw)
	}
}

func TestDerive_SingleWordIsStable(t *testing.T) {
	// Test: a single word re-derived through Derive is unchanged
	for _, raw := range []string{"order", "Invoice", "x", "a1b2"} {
		first := Derive(raw)
		assert.Equal(t, first, Derive(first.Pascal))
	}
}

func TestFromPascal(t *testing.T) {
	assert.Equal(t, Variants{"OrderItem", "orderItem", "OrderItems", "orderItems"}, FromPascal("OrderItem"))
	assert.Equal(t, Variants{}, FromPascal(""))
}

func TestNormalizePackage(t *testing.T) {
	assert.Equal(t, "com.example.shop", NormalizePackage("  Com.Example.Shop "))
}

func TestPackagePath(t *testing.T) {
	assert.Equal(t, "com/example/shop", PackagePath("com.example.shop"))
	assert.Equal(t, "app", PackagePath("app"))
}

// randomName builds a printable ASCII string containing at least one letter
func randomName(rng *rand.Rand) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 -_./!"
	n := 1 + rng.Intn(20)
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	// Guarantee at least one letter
	b[rng.Intn(n)] = byte('a' + rng.Intn(26))
	return string(b)
}
