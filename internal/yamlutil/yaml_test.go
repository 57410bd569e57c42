package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type testDoc struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		var doc testDoc
		if err := Unmarshal([]byte("name: deck\ncount: 3\n"), &doc); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if doc.Name != "deck" || doc.Count != 3 {
			t.Errorf("doc = %+v, want {deck 3}", doc)
		}
	})

	t.Run("empty data", func(t *testing.T) {
		var doc testDoc
		if err := Unmarshal(nil, &doc); !errors.Is(err, ErrNilData) {
			t.Errorf("error = %v, want ErrNilData", err)
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		if err := Unmarshal([]byte("name: x"), nil); !errors.Is(err, ErrNilDestination) {
			t.Errorf("error = %v, want ErrNilDestination", err)
		}
	})

	t.Run("input too large", func(t *testing.T) {
		var doc testDoc
		data := []byte("name: " + strings.Repeat("x", MaxInputSize))
		if err := Unmarshal(data, &doc); !errors.Is(err, ErrInputTooLarge) {
			t.Errorf("error = %v, want ErrInputTooLarge", err)
		}
	})
}

func TestUnmarshalStrict(t *testing.T) {
	t.Run("unknown field rejected", func(t *testing.T) {
		var doc testDoc
		err := UnmarshalStrict([]byte("name: x\nbogus: y\n"), &doc)
		if err == nil {
			t.Error("UnmarshalStrict() error = nil, want unknown field error")
		}
	})

	t.Run("known fields accepted", func(t *testing.T) {
		var doc testDoc
		if err := UnmarshalStrict([]byte("name: x\n"), &doc); err != nil {
			t.Errorf("UnmarshalStrict() error = %v", err)
		}
	})
}
