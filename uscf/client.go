/* Copyright © 2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package uscf fetches member ratings and membership status from US Chess.
// Ratings come from the ratings API; membership expiration is scraped from
// the MSA member detail page, which the API does not expose.
package uscf

import (
	"context"
	"net/http"
	"time"

	"github.com/aarushchugh/chesspair/internal/httpcache"
)

type Client struct {
	// rating data changes after events; membership pages rarely do
	httpClient1day *http.Client
	httpClient7day *http.Client
}

func NewClient(ctx context.Context) *Client {
	return &Client{
		httpClient1day: httpcache.NewCachedHttpClient(ctx, 24*time.Hour),
		httpClient7day: httpcache.NewCachedHttpClient(ctx, 7*24*time.Hour),
	}
}
