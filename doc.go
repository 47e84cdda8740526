// Package stylora is a client for the Stylora product-search API: text,
// image and multimodal product search, product detail lookup and brand
// listing/detail lookup.
//
// Two facades share one core. Client blocks on the caller's goroutine:
//
//	client, err := stylora.New(stylora.Config{APIKey: "sk-..."})
//	if err != nil {
//		log.Fatal(err)
//	}
//	resp, err := client.Search(ctx, stylora.SearchRequest{Query: "linen shirt"})
//
// AsyncClient returns a buffered channel per call and never blocks the
// caller while the exchange is in flight:
//
//	async, _ := stylora.NewAsync(stylora.Config{APIKey: "sk-..."})
//	result := <-async.Search(ctx, stylora.SearchRequest{Query: "linen shirt"})
//
// Both facades produce identical results and identical errors for identical
// inputs. Every error matches exactly one sentinel in the catalog package
// (catalog.ErrValidation, catalog.ErrAuthentication, catalog.ErrNotFound,
// catalog.ErrServer, catalog.ErrConnection) under errors.Is.
package stylora
