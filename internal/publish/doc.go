// Package publish renders tree documents and uploads the markup to S3.
//
// Each document is rendered with the project's render settings and stored
// at <prefix><name>.html, where name is the document's base name without
// its extension:
//
//	client, err := publish.NewClient(ctx, "eu-west-1")
//	p := publish.New(client, publish.Options{Bucket: "site", Prefix: "www/"})
//	results, err := p.Publish(ctx, "pages/index.yaml", "pages/about.yaml")
package publish
