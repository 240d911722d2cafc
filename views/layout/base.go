package layout

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Base wraps body in the HTML document with head metadata.
func Base(meta PageMeta, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		e := templ.EscapeString[string]
		if _, err := fmt.Fprintf(w, `<!doctype html><html lang="en"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>%s</title>`+
			`<meta name="description" content="%s">`+
			`<meta name="keywords" content="%s">`+
			`<link rel="canonical" href="%s">`+
			`<meta property="og:type" content="%s">`+
			`<meta property="og:title" content="%s">`+
			`<meta property="og:description" content="%s">`+
			`<meta property="og:url" content="%s">`+
			`<meta property="og:site_name" content="%s">`,
			e(meta.Title), e(meta.Description), e(meta.KeywordsString()), e(meta.CanonicalURL),
			e(meta.OGType), e(meta.OGTitle), e(meta.OGDescription), e(meta.OGURL), e(meta.OGSiteName),
		); err != nil {
			return err
		}

		if meta.OGImageURL != "" {
			if _, err := fmt.Fprintf(w, `<meta property="og:image" content="%s"><meta name="twitter:image" content="%s">`,
				e(meta.OGImageURL), e(meta.OGImageURL)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `<meta name="twitter:card" content="%s">`, e(meta.TwitterCard)); err != nil {
			return err
		}

		// encoding/json escapes <, > and &, so the payload cannot close the script tag
		if meta.ProductSchemaJSON != "" {
			if _, err := fmt.Fprintf(w, `<script type="application/ld+json">%s</script>`, meta.ProductSchemaJSON); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `<link rel="stylesheet" href="/public/css/styles.css"></head>`+
			`<body class="bg-white text-[#1a1a1a] antialiased"><main class="mx-auto max-w-6xl px-8 py-12">`); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}
