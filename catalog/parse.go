package catalog

import (
	"bytes"
	"errors"
	"net/url"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

const (
	listingLinkClass = "js-gtm-product-click"
	listingPriceAttr = "data-gtm-eventproductprice"
	productFieldCls  = "b-dotted-line__content"
)

// Listing is one product link on a catalog listing page.
type Listing struct {
	Price string
	URL   string
}

// ParseListing extracts every product link of a listing page. Relative links are resolved
// against base.
func ParseListing(body []byte, base *url.URL) (listings []Listing, err error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, errors.Join(errors.New("could not parse listing page"), err)
	}
	for n := range walk(doc) {
		if n.Type != html.ElementNode || n.Data != "a" || !hasClass(n, listingLinkClass) {
			continue
		}
		price, okPrice := attr(n, listingPriceAttr)
		href, okHref := attr(n, "href")
		if !okPrice || !okHref {
			continue
		}
		ref, err := url.Parse(href)
		if err != nil {
			continue
		}
		listings = append(listings, Listing{Price: price, URL: base.ResolveReference(ref).String()})
	}
	return listings, nil
}

// ParseProduct returns the trimmed text of every specification field on a product page,
// in document order.
func ParseProduct(body []byte) (fields []string, err error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, errors.Join(errors.New("could not parse product page"), err)
	}
	for n := range walk(doc) {
		if n.Type == html.ElementNode && hasClass(n, productFieldCls) {
			fields = append(fields, strings.TrimSpace(text(n)))
		}
	}
	return fields, nil
}

// walk yields n and its descendants in document order.
func walk(n *html.Node) func(yield func(*html.Node) bool) {
	return func(yield func(*html.Node) bool) {
		var visit func(*html.Node) bool
		visit = func(n *html.Node) bool {
			if !yield(n) {
				return false
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if !visit(c) {
					return false
				}
			}
			return true
		}
		visit(n)
	}
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasClass(n *html.Node, class string) bool {
	value, ok := attr(n, "class")
	return ok && slices.Contains(strings.Fields(value), class)
}

func text(n *html.Node) string {
	var b strings.Builder
	for c := range walk(n) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}
