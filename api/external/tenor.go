/* tenor.go
 * Contains the Tenor v2 gif search used by the gif and interaction commands
 */

package external

import (
	"context"
	"fmt"
	"net/url"
)

// FetchGif searches Tenor for keyword and returns the url of one random
// result, preferring the full gif rendition.
// Preconditions: Receives a context and a non-empty keyword
// Postconditions: Returns a gif URL, or ErrUnavailable when the key is missing or nothing matched
func (c *Client) FetchGif(ctx context.Context, keyword string) (string, error) {
	if c.TenorKey == "" {
		return "", fmt.Errorf("%w: no tenor api key configured", ErrUnavailable)
	}
	if keyword == "" {
		return "", fmt.Errorf("%w: empty gif keyword", ErrUnavailable)
	}

	query := url.Values{}
	query.Set("q", keyword)
	query.Set("key", c.TenorKey)
	query.Set("limit", "20")

	var res tenorResponse
	if err := c.getJSON(ctx, c.TenorURL+"?"+query.Encode(), &res); err != nil {
		return "", err
	}
	if len(res.Results) == 0 {
		return "", fmt.Errorf("%w: no gif results for %q", ErrUnavailable, keyword)
	}

	picked := res.Results[c.Rand.Intn(len(res.Results))]
	for _, format := range []string{"gif", "mediumgif", "tinygif"} {
		if media, ok := picked.MediaFormats[format]; ok && media.URL != "" {
			return media.URL, nil
		}
	}
	for _, media := range picked.MediaFormats {
		if media.URL != "" {
			return media.URL, nil
		}
	}
	if picked.URL != "" {
		return picked.URL, nil
	}
	return "", fmt.Errorf("%w: gif result had no media url", ErrUnavailable)
}
