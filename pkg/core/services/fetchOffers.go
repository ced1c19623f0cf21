package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/skip-hire/pkg/clients/skipclient"
	"github.com/jakechorley/skip-hire/pkg/core/model"
	"github.com/jakechorley/skip-hire/pkg/core/offers"
)

// User-facing failure messages
const (
	MsgFetchFailed     = "Failed to fetch skip information."
	MsgNoSkipData      = "No skip data available."
	MsgUnexpectedError = "Something went wrong"
)

// SkipSource defines the skip lookup operation needed to build offers
type SkipSource interface {
	GetSkipsByLocation(ctx context.Context, location model.Location) ([]model.RawSkipRecord, error)
}

// FallbackProvider supplies the offers shown when the skip source cannot be used
type FallbackProvider interface {
	FallbackOffers() []model.SkipOffer
}

// FetchOffersResult is always usable: Offers is populated on success and on failure
type FetchOffersResult struct {
	Offers       []model.SkipOffer
	UsedFallback bool
	ErrorMessage string // empty unless UsedFallback
}

// FetchOffers fetches skips for a location and converts them to offers.
// Failures never propagate: the fallback offers are returned together with a message.
func FetchOffers(
	ctx context.Context,
	source SkipSource,
	fallback FallbackProvider,
	location model.Location,
	logger *zap.Logger,
) (result FetchOffersResult) {
	logger.Debug("Fetching offers",
		zap.String("postcode", location.Postcode),
		zap.String("area", location.Area))

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Recovered while building offers", zap.Any("panic", r))
			result = fallbackResult(fallback, panicMessage(r))
		}
	}()

	rawSkips, err := source.GetSkipsByLocation(ctx, location)
	if err != nil {
		logger.Warn("Skip lookup failed, using fallback offers", zap.Error(err))
		return fallbackResult(fallback, failureMessage(err))
	}

	// An empty list is unusable even if the source accepted it
	if len(rawSkips) == 0 {
		logger.Warn("Skip lookup returned no skips, using fallback offers")
		return fallbackResult(fallback, MsgNoSkipData)
	}

	skipOffers, err := offers.ToOffers(rawSkips)
	if err != nil {
		logger.Warn("Failed to convert skips, using fallback offers", zap.Error(err))
		return fallbackResult(fallback, failureMessage(err))
	}

	logger.Info("Offers fetched", zap.Int("count", len(skipOffers)))

	return FetchOffersResult{Offers: skipOffers}
}

func fallbackResult(fallback FallbackProvider, message string) FetchOffersResult {
	return FetchOffersResult{
		Offers:       fallback.FallbackOffers(),
		UsedFallback: true,
		ErrorMessage: message,
	}
}

// failureMessage maps an error to the message shown next to the retry option
func failureMessage(err error) string {
	switch {
	case errors.Is(err, skipclient.ErrTransport):
		return MsgFetchFailed
	case errors.Is(err, skipclient.ErrInvalidPayload):
		return MsgNoSkipData
	case err.Error() != "":
		return err.Error()
	default:
		return MsgUnexpectedError
	}
}

func panicMessage(r any) string {
	switch v := r.(type) {
	case error:
		return failureMessage(v)
	case string:
		if v != "" {
			return v
		}
	case fmt.Stringer:
		if s := v.String(); s != "" {
			return s
		}
	}
	return MsgUnexpectedError
}
