/* Copyright © 2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package uscf

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/aarushchugh/chesspair/internal"
)

type MemID int

// Member holds a USCF member's current ratings and membership status.
// A zero rating means unrated in that system.
type Member struct {
	ID          MemID
	Name        string
	RegRating   int
	QuickRating int
	BlitzRating int
	// Expiration is the membership expiration date; zero when the MSA page
	// did not list one.
	Expiration time.Time
}

// Expired reports whether the membership has lapsed as of now.
func (m *Member) Expired() bool {
	return !m.Expiration.IsZero() && m.Expiration.Before(time.Now())
}

// apiMemberResponse represents the JSON response from the member API endpoint
type apiMemberResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Ratings   []struct {
		Rating       int    `json:"rating"`
		RatingSystem string `json:"ratingSystem"`
	} `json:"ratings"`
}

// FetchMember retrieves a member's name and ratings from the ratings API
// (https://ratings-api.uschess.org/api/v1/members/) and their membership
// expiration from the MSA member detail page.
func (client *Client) FetchMember(ctx context.Context,
	memberID MemID) (*Member, error) {

	member, err := client.fetchProfile(ctx, memberID)
	if err != nil {
		return nil, err
	}

	expiration, err := client.fetchExpiration(ctx, memberID)
	if err != nil {
		// membership status is advisory; the ratings are still usable
		return member, nil
	}
	member.Expiration = expiration

	return member, nil
}

func (client *Client) fetchProfile(ctx context.Context,
	memberID MemID) (*Member, error) {

	endpoint := fmt.Sprintf(
		"https://ratings-api.uschess.org/api/v1/members/%v", memberID)
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating profile request: %w", err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.httpClient1day.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing profile HTTP GET: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected profile status %d: %s",
			resp.StatusCode, string(body))
	}

	return parseProfile(memberID, resp.Body)
}

func parseProfile(memberID MemID, body io.Reader) (*Member, error) {
	var memberData apiMemberResponse
	if err := json.NewDecoder(body).Decode(&memberData); err != nil {
		return nil, fmt.Errorf("decoding profile JSON: %w", err)
	}

	member := &Member{
		ID: memberID,
		Name: internal.NormalizeName(
			memberData.FirstName + " " + memberData.LastName),
	}
	for _, rating := range memberData.Ratings {
		switch rating.RatingSystem {
		case "R":
			member.RegRating = rating.Rating
		case "Q":
			member.QuickRating = rating.Rating
		case "B":
			member.BlitzRating = rating.Rating
		}
	}

	return member, nil
}

func (client *Client) fetchExpiration(ctx context.Context,
	memberID MemID) (time.Time, error) {

	endpoint := fmt.Sprintf("https://www.uschess.org/msa/MbrDtlMain.php?%v",
		memberID)
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return time.Time{}, fmt.Errorf("creating MSA request: %w", err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := client.httpClient7day.Do(req)
	if err != nil {
		return time.Time{}, fmt.Errorf("performing MSA HTTP GET: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return time.Time{}, fmt.Errorf("unexpected MSA status %d",
			resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing MSA HTML: %w", err)
	}

	return parseExpiration(doc)
}

// parseExpiration finds the "Expiration Dt." row on the MSA member detail
// page and parses the bolded date in the adjacent cell.
func parseExpiration(doc *goquery.Document) (time.Time, error) {
	var raw string
	doc.Find("tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		label := false
		row.Find("td").Each(func(j int, td *goquery.Selection) {
			text := strings.TrimSpace(td.Text())
			if strings.Contains(text, "Expiration Dt.") {
				label = true
				return
			}
			if label && raw == "" {
				b := td.Find("b").First()
				if b.Length() > 0 {
					raw = strings.TrimSpace(b.Text())
				} else {
					raw = text
				}
			}
		})
		return raw == ""
	})
	if raw == "" {
		return time.Time{}, fmt.Errorf("expiration date not found")
	}

	expiration, err := internal.ParseDateOrZero(raw)
	if err != nil || expiration.IsZero() {
		return time.Time{}, fmt.Errorf("unparseable expiration date %q", raw)
	}
	return expiration, nil
}
