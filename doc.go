// Package brainus provides a Go client SDK for the Brainus
// question-answering API.
//
// The SDK wraps the query, usage and plans endpoints behind a typed
// interface with exponential-backoff retries and a typed error
// taxonomy. Transient failures (network errors, 5xx responses) are
// retried automatically; authentication, quota and other client-side
// errors surface immediately.
//
// Basic usage:
//
//	client, err := brainus.New("brainus_your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.Query(ctx, &brainus.QueryRequest{
//	    Query: "What is photosynthesis?",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(resp.Answer)
//	for _, c := range resp.Citations {
//	    fmt.Printf("  %s, pages %v\n", c.DocumentName, c.Pages)
//	}
package brainus
