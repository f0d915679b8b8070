package ledger_test

import (
	"context"
	"testing"

	"github.com/savioruz/culturepay/config"
	"github.com/savioruz/culturepay/internal/ledger"
	log "github.com/savioruz/culturepay/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := log.NewMockInterface(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	t.Run("success: empty driver is noop", func(t *testing.T) {
		led, cleanup := ledger.New(context.Background(), &config.Config{}, mockLogger)
		defer cleanup()

		assert.Equal(t, "noop", led.Driver())
	})

	t.Run("error: unknown driver falls back to noop", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).Times(1)

		led, cleanup := ledger.New(context.Background(), &config.Config{Ledger: config.Ledger{Driver: "ftp"}}, mockLogger)
		defer cleanup()

		assert.Equal(t, "noop", led.Driver())
	})

	t.Run("error: sheets without spreadsheet falls back to noop", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).Times(1)

		led, cleanup := ledger.New(context.Background(), &config.Config{Ledger: config.Ledger{Driver: "Sheets"}}, mockLogger)
		defer cleanup()

		assert.Equal(t, "noop", led.Driver())
	})
}

func TestNopLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := log.NewMockInterface(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).Times(1)

	led := ledger.NewNop(mockLogger)

	res, err := led.Append(context.Background(), sampleRecord())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "pay_XYZ", res.Reference)

	records, err := led.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}
