package device

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/pocket/internal/client/models"
	"github.com/dmitrijs2005/pocket/internal/common"
)

func TestParse_Valid(t *testing.T) {
	payload := []byte(`{"uuid":"D1","user_uuid":"U1","host":"h.example","host_pub_key":"PK","extra":42}`)

	d, err := Parse(payload)
	require.NoError(t, err)

	want := models.Device{UUID: "D1", UserUUID: "U1", Host: "h.example", HostPubKey: "PK", Status: models.DeviceActive}
	assert.Empty(t, cmp.Diff(want, d))
}

func TestParse_ValuesVerbatim(t *testing.T) {
	d, err := Parse([]byte(`{"uuid":" Ab ","user_uuid":"","host":"HOST","host_pub_key":"k"}`))
	require.NoError(t, err)
	assert.Equal(t, " Ab ", d.UUID)
	assert.Equal(t, "", d.UserUUID)
	assert.Equal(t, "HOST", d.Host)
}

func TestParse_MissingField(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		field   string
	}{
		{"no uuid", `{"user_uuid":"U","host":"h","host_pub_key":"k"}`, "uuid"},
		{"no user_uuid", `{"uuid":"D","host":"h","host_pub_key":"k"}`, "user_uuid"},
		{"no host", `{"uuid":"D","user_uuid":"U","host_pub_key":"k"}`, "host"},
		{"no key", `{"uuid":"D","user_uuid":"U","host":"h"}`, "host_pub_key"},
		{"first missing wins", `{"host_pub_key":"k"}`, "uuid"},
		{"non string value", `{"uuid":7,"user_uuid":"U","host":"h","host_pub_key":"k"}`, "uuid"},
		{"null value", `{"uuid":"D","user_uuid":null,"host":"h","host_pub_key":"k"}`, "user_uuid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.payload))
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrMissingField)

			var mf *common.MissingFieldError
			require.True(t, errors.As(err, &mf))
			assert.Equal(t, tt.field, mf.Field)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, p := range []string{`{`, `not json`, `[1,2]`, `"str"`, `null`, ``} {
		_, err := Parse([]byte(p))
		assert.ErrorIs(t, err, common.ErrMalformedPayload, "payload %q", p)
	}
}

func TestPayload_RoundTrip(t *testing.T) {
	in := models.Device{UUID: "D", UserUUID: "U", Host: "h", HostPubKey: "k", Status: models.DeviceActive}

	b, err := Payload(in)
	require.NoError(t, err)

	out, err := Parse(b)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
