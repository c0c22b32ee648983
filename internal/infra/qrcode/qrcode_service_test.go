package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"low", qrcode.Low},
		{"M", qrcode.Medium},
		{"medium", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.in))
		})
	}
}

func TestQRCodeService_GenerateStoreQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	qrBytes, err := service.GenerateStoreQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateStoreQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := NewQRCodeService(size, "M", "https://acai.example.com")
		qrBytes, err := service.GenerateStoreQR(uuid.New())
		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	}
}

func TestQRCodeService_ParseStoreQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "")
	storeID := uuid.New()

	t.Run("valid", func(t *testing.T) {
		raw, err := json.Marshal(QRCodeData{StoreID: storeID.String(), Type: "store", URL: "https://acai.example.com/stores/" + storeID.String()})
		require.NoError(t, err)

		got, err := service.ParseStoreQR(string(raw))
		require.NoError(t, err)
		assert.Equal(t, storeID, got)
	})

	t.Run("wrong type", func(t *testing.T) {
		raw, err := json.Marshal(QRCodeData{StoreID: storeID.String(), Type: "subscription"})
		require.NoError(t, err)

		_, err = service.ParseStoreQR(string(raw))
		assert.ErrorContains(t, err, "invalid QR code type")
	})

	t.Run("bad id", func(t *testing.T) {
		_, err := service.ParseStoreQR(`{"store_id":"nope","type":"store"}`)
		assert.ErrorContains(t, err, "failed to parse store ID")
	})

	t.Run("not json", func(t *testing.T) {
		_, err := service.ParseStoreQR("store1")
		assert.Error(t, err)
	})
}
