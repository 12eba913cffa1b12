/* content.go
 * Contains the logic used to fetch jokes, facts, quotes and images from external
 * content APIs, and return the results to the higher level functions
 */

package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const defaultTimeout = 10 * time.Second

// Client fetches content from the third party APIs. Base URLs are fields so
// tests can point them at a local server. All requests share one bounded
// timeout and one rate limiter; a saturated limiter or a hung API surfaces
// as ErrUnavailable, never as a stuck command.
type Client struct {
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *slog.Logger
	Rand       *rand.Rand

	TenorKey string

	JokeURL  string
	FactURL  string
	QuoteURL string
	CatURL   string
	DogURL   string
	MemeURL  string
	TenorURL string
}

// NewClient builds a content client with production endpoints.
// Preconditions: Receives the Tenor API key, which may be empty (gif search then reports unavailable)
// Postconditions: Returns a ready Client
func NewClient(tenorKey string, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		HTTPClient: &http.Client{Timeout: defaultTimeout},
		Limiter:    rate.NewLimiter(rate.Every(time.Second), 5),
		Log:        log,
		Rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
		TenorKey:   tenorKey,
		JokeURL:    "https://official-joke-api.appspot.com/random_joke",
		FactURL:    "https://uselessfacts.jsph.pl/api/v2/facts/random",
		QuoteURL:   "https://zenquotes.io/api/random",
		CatURL:     "https://api.thecatapi.com/v1/images/search",
		DogURL:     "https://dog.ceo/api/breeds/image/random",
		MemeURL:    "https://meme-api.com/gimme",
		TenorURL:   "https://tenor.googleapis.com/v2/search",
	}
}

// getJSON performs a rate-limited GET and decodes the JSON body into out.
// Every failure mode wraps ErrUnavailable so callers have a single error to
// branch on.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := c.Limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limit wait: %v", ErrUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("User-Agent", "coinbot/1.0")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Warn("content request failed", "url", url, "err", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.Log.Warn("content request bad status", "url", url, "status", resp.StatusCode)
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}
	return nil
}

// FetchJoke returns a random two-line joke.
func (c *Client) FetchJoke(ctx context.Context) (string, error) {
	var joke jokeResponse
	if err := c.getJSON(ctx, c.JokeURL, &joke); err != nil {
		return "", err
	}
	if joke.Setup == "" {
		return "", fmt.Errorf("%w: empty joke", ErrUnavailable)
	}
	return joke.Setup + "\n" + joke.Punchline, nil
}

// FetchFact returns a random fact.
func (c *Client) FetchFact(ctx context.Context) (string, error) {
	var fact factResponse
	if err := c.getJSON(ctx, c.FactURL, &fact); err != nil {
		return "", err
	}
	if fact.Text == "" {
		return "", fmt.Errorf("%w: empty fact", ErrUnavailable)
	}
	return fact.Text, nil
}

// FetchQuote returns a random quote with attribution.
func (c *Client) FetchQuote(ctx context.Context) (string, error) {
	var quotes []quoteResponse
	if err := c.getJSON(ctx, c.QuoteURL, &quotes); err != nil {
		return "", err
	}
	if len(quotes) == 0 || quotes[0].Quote == "" {
		return "", fmt.Errorf("%w: empty quote", ErrUnavailable)
	}
	return fmt.Sprintf("%q — %s", quotes[0].Quote, quotes[0].Author), nil
}

// FetchCat returns a random cat image URL.
func (c *Client) FetchCat(ctx context.Context) (string, error) {
	var cats []catImage
	if err := c.getJSON(ctx, c.CatURL, &cats); err != nil {
		return "", err
	}
	if len(cats) == 0 || cats[0].URL == "" {
		return "", fmt.Errorf("%w: no cat image", ErrUnavailable)
	}
	return cats[0].URL, nil
}

// FetchDog returns a random dog image URL.
func (c *Client) FetchDog(ctx context.Context) (string, error) {
	var dog dogResponse
	if err := c.getJSON(ctx, c.DogURL, &dog); err != nil {
		return "", err
	}
	if dog.Status != "success" || dog.Message == "" {
		return "", fmt.Errorf("%w: no dog image", ErrUnavailable)
	}
	return dog.Message, nil
}

// FetchMeme returns a random meme image URL.
func (c *Client) FetchMeme(ctx context.Context) (string, error) {
	var meme memeResponse
	if err := c.getJSON(ctx, c.MemeURL, &meme); err != nil {
		return "", err
	}
	if meme.URL == "" {
		return "", fmt.Errorf("%w: no meme", ErrUnavailable)
	}
	return meme.URL, nil
}

// Fetch dispatches on kind. Keyword is only used by gif search.
// Preconditions: Receives a context, a content kind and an optional keyword
// Postconditions: Returns the content string, or ErrUnavailable
func (c *Client) Fetch(ctx context.Context, kind Kind, keyword string) (string, error) {
	switch kind {
	case KindJoke:
		return c.FetchJoke(ctx)
	case KindFact:
		return c.FetchFact(ctx)
	case KindQuote:
		return c.FetchQuote(ctx)
	case KindCat:
		return c.FetchCat(ctx)
	case KindDog:
		return c.FetchDog(ctx)
	case KindMeme:
		return c.FetchMeme(ctx)
	case KindGif:
		return c.FetchGif(ctx, keyword)
	default:
		return "", fmt.Errorf("%w: unknown kind %q", ErrUnavailable, kind)
	}
}
