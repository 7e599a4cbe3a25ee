package checksum

import (
	"testing"
)

func TestSHA256_CalculateRaw(t *testing.T) {
	calc := New()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "Empty content",
			content:  "",
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "Known text",
			content:  "hello\n",
			expected: "5891b5b522d5df086d0ff0b110fbd9d21bb4fc7163af34d08286a2e846f6be03",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := calc.CalculateRaw([]byte(tt.content))

			if len(result) != 64 {
				t.Errorf("CalculateRaw() returned hash of length %d, expected 64", len(result))
			}
			if result != tt.expected {
				t.Errorf("CalculateRaw() = %s, expected %s", result, tt.expected)
			}
		})
	}
}

func TestSHA256_CalculateRaw_ContentSensitive(t *testing.T) {
	calc := New()

	a := calc.CalculateRaw([]byte("alpha"))
	b := calc.CalculateRaw([]byte("alphb"))
	if a == b {
		t.Error("Expected different content to produce different digests")
	}
}

func TestSHA256_CalculateManifest_OrderIndependent(t *testing.T) {
	calc := New()

	entries := []ManifestEntry{
		{Path: "a.txt", Digest: calc.CalculateRaw([]byte("alpha"))},
		{Path: "nested/b.txt", Digest: calc.CalculateRaw([]byte("beta"))},
		{Path: "z.txt", Digest: calc.CalculateRaw([]byte("zeta"))},
	}
	reversed := []ManifestEntry{entries[2], entries[1], entries[0]}

	first := calc.CalculateManifest(entries)
	second := calc.CalculateManifest(reversed)

	if first != second {
		t.Errorf("Manifest digest should not depend on entry order: %s != %s", first, second)
	}
	if len(first) != 64 {
		t.Errorf("CalculateManifest() returned hash of length %d, expected 64", len(first))
	}
}

func TestSHA256_CalculateManifest_SensitiveToContent(t *testing.T) {
	calc := New()

	base := []ManifestEntry{{Path: "a.txt", Digest: calc.CalculateRaw([]byte("alpha"))}}
	changed := []ManifestEntry{{Path: "a.txt", Digest: calc.CalculateRaw([]byte("ALPHA"))}}
	renamed := []ManifestEntry{{Path: "b.txt", Digest: base[0].Digest}}

	baseDigest := calc.CalculateManifest(base)
	if calc.CalculateManifest(changed) == baseDigest {
		t.Error("Expected content change to alter the manifest digest")
	}
	if calc.CalculateManifest(renamed) == baseDigest {
		t.Error("Expected path change to alter the manifest digest")
	}
}

func TestSHA256_CalculateManifest_Empty(t *testing.T) {
	calc := New()

	digest := calc.CalculateManifest(nil)
	if digest != "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855" {
		t.Errorf("Empty manifest should hash to the empty-input digest, got %s", digest)
	}
}
