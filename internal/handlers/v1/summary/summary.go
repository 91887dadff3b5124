package summary

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bankbuddy/internal/ledger"
)

func parseDateRange(fromDate, toDate string) (from, to time.Time, err error) {
	from, parseErr := time.Parse(ledger.DateFormat, fromDate)
	if parseErr != nil {
		return time.Time{}, time.Time{}, huma.NewError(http.StatusBadRequest, "invalid fromDate", parseErr)
	}
	to, parseErr = time.Parse(ledger.DateFormat, toDate)
	if parseErr != nil {
		return time.Time{}, time.Time{}, huma.NewError(http.StatusBadRequest, "invalid toDate", parseErr)
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, huma.NewError(http.StatusBadRequest, "fromDate must not be after toDate")
	}
	return from, to, nil
}
