package uaprofile

import (
	"reflect"
	"testing"
)

func TestConditionsFor(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want []string
	}{
		{"empty defaults to node", "", []string{"node", "import", "default"}},
		{"deno prefix", "Deno/1.40.0", []string{"deno", "import", "default"}},
		{"node prefix", "Node/20.0.0", []string{"node", "import", "default"}},
		{"undici", "undici/5.0.0", []string{"node", "import", "default"}},
		{"chrome browser", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36", []string{"browser", "import", "default"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConditionsFor(tt.ua)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ConditionsFor(%q) = %v, want %v", tt.ua, got, tt.want)
			}
		})
	}
}
