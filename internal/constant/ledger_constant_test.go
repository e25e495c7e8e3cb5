package constant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTxTypeValid(t *testing.T) {
	for _, tt := range SupportedTxTypes {
		assert.True(t, tt.Valid(), tt)
	}
	assert.False(t, TxType("swap").Valid())
	assert.False(t, TxType("").Valid())
}

func TestStatusValid(t *testing.T) {
	assert.True(t, TxStatusPending.Valid())
	assert.True(t, TxStatusSuccess.Valid())
	assert.True(t, TxStatusFailed.Valid())
	assert.False(t, TxStatus("done").Valid())

	assert.True(t, LoanStatusActive.Valid())
	assert.True(t, LoanStatusRepaid.Valid())
	assert.False(t, LoanStatus("defaulted").Valid())
}
