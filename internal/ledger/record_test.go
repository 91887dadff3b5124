package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAmountTone_CheckingSavings(t *testing.T) {
	assert.Equal(t, ToneFavorable, AmountTone(AccountTypeCheckingSavings, decimal.RequireFromString("3000.00")))
	assert.Equal(t, ToneUnfavorable, AmountTone(AccountTypeCheckingSavings, decimal.RequireFromString("-50.00")))
}

func TestAmountTone_CreditDebit(t *testing.T) {
	assert.Equal(t, ToneFavorable, AmountTone(AccountTypeCreditDebit, decimal.RequireFromString("-120.00")))
	assert.Equal(t, ToneUnfavorable, AmountTone(AccountTypeCreditDebit, decimal.RequireFromString("75.25")))
}

func TestAmountTone_OtherIsNeutral(t *testing.T) {
	assert.Equal(t, ToneNeutral, AmountTone(AccountTypeOther, decimal.RequireFromString("-1.00")))
}

func TestParseAccountType_UnknownFallsBack(t *testing.T) {
	assert.Equal(t, AccountTypeCheckingSavings, ParseAccountType("checking/savings"))
	assert.Equal(t, AccountTypeCreditDebit, ParseAccountType("credit/debit"))
	assert.Equal(t, AccountTypeOther, ParseAccountType("brokerage"))
}
