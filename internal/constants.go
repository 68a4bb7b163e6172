/* Copyright © 2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	UserAgent      = "chesspair/0.4.0 (+https://github.com/aarushchugh/chesspair)"
	WebCacheBucket = "aarushchugh-chesspair-prod-webcache"
)
