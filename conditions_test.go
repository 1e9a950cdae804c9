package covenant

import (
	"encoding/json"
	"testing"

	"github.com/covenant-labs/covenant/errors"
)

func TestCondition(t *testing.T) {
	data := []byte("1234567890")
	c := NewCondition("foo", "bar", data)

	ext, typ, d, err := c.Parse()
	if err != nil {
		t.Fatalf("cannot parse: %+v", err)
	}
	if ext != "foo" || typ != "bar" || string(d) != string(data) {
		t.Fatalf("unexpected parse result: %s %s %X", ext, typ, d)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("validation failed: %+v", err)
	}
	if got := len(c.Address()); got != AddressLength {
		t.Fatalf("unexpected address length: %d", got)
	}
}

func TestConditionValidate(t *testing.T) {
	cases := map[string]struct {
		c       Condition
		wantErr *errors.Error
	}{
		"valid":           {NewCondition("foo", "bar", []byte("x")), nil},
		"nil":             {nil, errors.ErrInput},
		"missing data":    {Condition("foo/bar/"), errors.ErrInput},
		"not enough args": {Condition("foo/bar"), errors.ErrInput},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.c.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestAddressValidate(t *testing.T) {
	addr := NewAddress([]byte("some arbitrary payload"))
	if err := addr.Validate(); err != nil {
		t.Fatalf("validation failed: %+v", err)
	}
	if err := Address(nil).Validate(); !errors.ErrEmpty.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
	if err := Address("too short").Validate(); !errors.ErrInput.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
}

func TestAddressUnmarshalJSON(t *testing.T) {
	addr := NewAddress([]byte("some arbitrary payload"))

	cases := map[string]struct {
		json     string
		wantErr  *errors.Error
		wantAddr Address
	}{
		"default hex": {
			json:     `"` + addr.String() + `"`,
			wantAddr: addr,
		},
		"hex prefix": {
			json:     `"hex:` + addr.String() + `"`,
			wantAddr: addr,
		},
		"bech32": {
			json:     `"bech32:` + addr.Bech32String("iov") + `"`,
			wantAddr: addr,
		},
		"empty is nil": {
			json:     `""`,
			wantAddr: nil,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var a Address
			err := json.Unmarshal([]byte(tc.json), &a)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if err == nil && !a.Equals(tc.wantAddr) {
				t.Fatalf("unexpected address: %s", a)
			}
		})
	}

	var a Address
	if err := json.Unmarshal([]byte(`"not-an-address"`), &a); err == nil {
		t.Fatal("want an error for a malformed payload")
	}
}
