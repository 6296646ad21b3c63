package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-dealsite/internal/yamlutil"
)

type testConfig struct {
	Name  string   `yaml:"name"`
	Limit int      `yaml:"limit"`
	Paths []string `yaml:"paths"`
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Strict decoding
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		errText string
	}{
		{name: "valid", data: []byte("name: site\nlimit: 3\npaths: [/a, /b]"), dest: &testConfig{}},
		{name: "nil data", data: nil, dest: &testConfig{}, wantErr: yamlutil.ErrNilData},
		{name: "nil destination", data: []byte("name: x"), dest: nil, wantErr: yamlutil.ErrNilDestination},
		{name: "unknown key", data: []byte("name: x\nnmae: y"), dest: &testConfig{}, errText: "nmae"},
		{name: "wrong type", data: []byte("limit: many"), dest: &testConfig{}, errText: "limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
			case tt.errText != "":
				if err == nil || !strings.Contains(err.Error(), tt.errText) {
					t.Errorf("error = %v, want mention of %q", err, tt.errText)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				cfg := tt.dest.(*testConfig)
				if cfg.Name != "site" || cfg.Limit != 3 || len(cfg.Paths) != 2 {
					t.Errorf("decoded = %+v", cfg)
				}
			}
		})
	}
}

func TestUnmarshalStrict_TooLarge(t *testing.T) {
	t.Parallel()

	data := []byte("name: " + strings.Repeat("x", yamlutil.MaxInputSize))
	if err := yamlutil.UnmarshalStrict(data, &testConfig{}); !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("error = %v, want ErrInputTooLarge", err)
	}
}

// ---------------------------------------------------------------------------
// TestMarshal - Encoding round trip
// ---------------------------------------------------------------------------

func TestMarshal(t *testing.T) {
	t.Parallel()

	in := testConfig{Name: "site", Limit: 3, Paths: []string{"/a"}}
	out, err := yamlutil.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}

	var back testConfig
	if err := yamlutil.UnmarshalStrict(out, &back); err != nil {
		t.Fatalf("UnmarshalStrict() of marshaled output: %v", err)
	}
	if back.Name != in.Name || back.Limit != in.Limit || len(back.Paths) != 1 {
		t.Errorf("round trip = %+v, want %+v", back, in)
	}
}
