package market

import "errors"

// ErrUpstreamUnavailable indicates the market data provider could not be
// reached, answered with a non-2xx status, or returned a body that does not
// parse. Callers should treat it as retryable and present a "try again later"
// state; it never signals data corruption.
var ErrUpstreamUnavailable = errors.New("market: upstream unavailable")
