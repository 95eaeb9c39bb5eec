// hal/httpclient.go
package hal

import "boardsim-go/text"

// DefaultStatusCode is what Get returns until a test injects something else.
const DefaultStatusCode = 200

// Client models the platform HTTP client: one configurable request/response
// pair, no transport, no retries, no concurrency. Begin records the target,
// Get and GetString return whatever the test injected, End does nothing.
type Client struct {
	lastURL    text.Value
	beginCount int
	timeout    int
	code       int
	body       text.Value
}

func NewClient() *Client {
	return &Client{code: DefaultStatusCode}
}

// Begin records url as the last-requested target.
func (c *Client) Begin(url text.Value) {
	c.lastURL = url
	c.beginCount++
}

// SetTimeout is accepted and recorded; the model never waits.
func (c *Client) SetTimeout(ms int) {
	c.timeout = ms
}

// Get returns the injected status code (DefaultStatusCode until changed).
func (c *Client) Get() int {
	return c.code
}

// GetString returns the injected response body.
func (c *Client) GetString() text.Value {
	return c.body
}

// End terminates the request. No-op.
func (c *Client) End() {}

// SetResponseCode injects the status code the next Get returns.
func (c *Client) SetResponseCode(code int) {
	c.code = code
}

// SetResponseBody injects the body the next GetString returns.
func (c *Client) SetResponseBody(body string) {
	c.body = text.New(body)
}

// LastURL returns the target of the most recent Begin.
func (c *Client) LastURL() text.Value { return c.lastURL }

// BeginCount returns how many times Begin was called since the last reset.
func (c *Client) BeginCount() int { return c.beginCount }

// Timeout returns the most recently requested timeout in milliseconds.
func (c *Client) Timeout() int { return c.timeout }

// Reset restores the defaults: status 200, empty body, zeroed counters.
func (c *Client) Reset() {
	c.lastURL = text.Value{}
	c.beginCount = 0
	c.timeout = 0
	c.code = DefaultStatusCode
	c.body = text.Value{}
}

var _ WebClient = (*Client)(nil)
