/* models.go
 * Contains the response structs for the third party content APIs and the shared
 * unavailability error
 */

package external

import "errors"

// ErrUnavailable is returned for any transport, status or decoding failure
// from a content API. Handlers render it as a friendly fallback line; it
// never crashes the bot.
var ErrUnavailable = errors.New("content service unavailable")

// Kind names a category of fetchable content.
type Kind string

const (
	KindJoke  Kind = "joke"
	KindFact  Kind = "fact"
	KindQuote Kind = "quote"
	KindCat   Kind = "cat"
	KindDog   Kind = "dog"
	KindMeme  Kind = "meme"
	KindGif   Kind = "gif"
)

type jokeResponse struct {
	Setup     string `json:"setup"`
	Punchline string `json:"punchline"`
}

type factResponse struct {
	Text string `json:"text"`
}

type quoteResponse struct {
	Quote  string `json:"q"`
	Author string `json:"a"`
}

type catImage struct {
	URL string `json:"url"`
}

type dogResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type memeResponse struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

type tenorResponse struct {
	Results []tenorResult `json:"results"`
}

type tenorResult struct {
	URL          string                `json:"url"`
	MediaFormats map[string]tenorMedia `json:"media_formats"`
}

type tenorMedia struct {
	URL string `json:"url"`
}
