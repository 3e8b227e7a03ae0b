// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"fmt"
	"time"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/golang-jwt/jwt/v5"
)

// ExpiryWarning is the remaining token lifetime under which a warning is
// logged.
const ExpiryWarning = 5 * time.Minute

// checkToken decodes token without verifying its signature and returns its
// expiry. The server does the real verification; this only gives early
// feedback for tokens that cannot work.
func checkToken(token string, now time.Time, logger log.Interface) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if exp == nil {
		return time.Time{}, fmt.Errorf("%w: no exp claim", ErrTokenInvalid)
	}

	left := exp.Sub(now)
	if left < 0 {
		return exp.Time, fmt.Errorf("%w (%s)", ErrTokenExpired, humanize.RelTime(exp.Time, now, "ago", "from now"))
	}
	if left < ExpiryWarning {
		logger.WithField("expires", humanize.RelTime(exp.Time, now, "ago", "from now")).
			Warn("the API token has less than five minutes remaining")
	}

	return exp.Time, nil
}
