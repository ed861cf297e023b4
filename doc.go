/*
Package pinboard is a client for the Pinboard v2 HTTP API.

Create a client with the "username:TOKEN" credential from the Pinboard
settings page. Pass true as the second argument to talk to the test API:

	client, err := pinboard.NewClient("maciej:ABC123", false)
	if err != nil { ... }

Every method takes a context, sends exactly one request and returns the
decoded JSON body unchanged. Numbers are decoded as json.Number:

	res, err := client.GetBookmarks(ctx,
		pinboard.WithTags("go", "http"),
		pinboard.WithCount(50),
	)

Parameters follow the service conventions: lists are comma-joined, flags are
sent as "yes" or "no" and timestamps as ISO-8601 in the offset they carry.
Creating a bookmark sends every flag; updating one sends only the fields
that are set:

	_, err = client.UpdateBookmark(ctx, id, pinboard.BookmarkUpdate{
		ToRead: pinboard.Bool(false),
		Tags:   []string{}, // erase the tags
	})

Failures are *Error values. Use errors.Is with the Err* sentinels to test a
specific kind, or errors.As to get the status code and response body:

	if errors.Is(err, pinboard.ErrRateLimitExceeded) { ... }

Local validation failures, such as an empty update or an oversized batch,
are reported as ErrInvalidArgument before any request is sent.
Nothing is retried.

The X-Auth-Token header carries the credential on every request.
*/
package pinboard
