package extract

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"github.com/newslens/newslens/internal/config"
	"github.com/newslens/newslens/internal/types"
)

// maxRefs bounds the number of articles taken from one listing page to
// avoid unbounded fetch fan-out.
const maxRefs = 10

// LinkExtractor discovers (title, link) pairs on a listing page using a
// pair of selector rules.
type LinkExtractor struct {
	logger *slog.Logger
}

// NewLinkExtractor creates a new link extractor.
func NewLinkExtractor(logger *slog.Logger) *LinkExtractor {
	return &LinkExtractor{
		logger: logger.With("component", "link_extractor"),
	}
}

// Extract selects title and link elements independently, resolves hrefs
// against baseURL, and pairs them into at most 10 ArticleRefs in
// document order. A title element that carries its own anchor (itself, a
// descendant, or a wrapping ancestor) is paired with that anchor;
// positional pairing against the link-rule result set is the fallback
// when the markup keeps titles and links in separate containers. Pairs
// with an empty trimmed title are dropped.
func (e *LinkExtractor) Extract(markup []byte, titleRule, linkRule config.SelectorRule, baseURL string) ([]types.ArticleRef, error) {
	root, err := html.Parse(bytes.NewReader(markup))
	if err != nil {
		return nil, &types.ParseError{URL: baseURL, Err: err}
	}
	doc := goquery.NewDocumentFromNode(root)

	titleNodes, err := selectNodes(root, doc, titleRule)
	if err != nil {
		return nil, &types.ParseError{URL: baseURL, Selector: titleRule.Selector, Err: err}
	}
	if len(titleNodes) > maxRefs {
		titleNodes = titleNodes[:maxRefs]
	}

	linkNodes, err := selectNodes(root, doc, linkRule)
	if err != nil {
		return nil, &types.ParseError{URL: baseURL, Selector: linkRule.Selector, Err: err}
	}
	if len(linkNodes) > maxRefs {
		linkNodes = linkNodes[:maxRefs]
	}

	links := make([]string, 0, len(titleNodes))
	for _, n := range linkNodes {
		links = append(links, resolveURL(htmlquery.SelectAttr(n, "href"), baseURL))
	}
	// Pad so the two lists can be paired positionally.
	for len(links) < len(titleNodes) {
		links = append(links, "")
	}

	refs := make([]types.ArticleRef, 0, len(titleNodes))
	for i, n := range titleNodes {
		title := strings.TrimSpace(htmlquery.InnerText(n))
		if title == "" {
			continue
		}
		link := resolveURL(anchorHref(n), baseURL)
		if link == "" {
			link = links[i]
		}
		refs = append(refs, types.ArticleRef{Title: title, URL: link})
	}

	e.logger.Debug("listing extracted",
		"base", baseURL,
		"titles", len(titleNodes),
		"links", len(linkNodes),
		"refs", len(refs),
	)

	return refs, nil
}

// selectNodes evaluates a selector rule against the parsed document.
func selectNodes(root *html.Node, doc *goquery.Document, rule config.SelectorRule) ([]*html.Node, error) {
	switch rule.Type {
	case "", "css":
		sel, err := cascadia.Compile(rule.Selector)
		if err != nil {
			return nil, err
		}
		return doc.FindMatcher(sel).Nodes, nil
	case "xpath":
		return htmlquery.QueryAll(root, rule.Selector)
	default:
		return nil, fmt.Errorf("unsupported selector type %q", rule.Type)
	}
}

// anchorHref finds the href most tightly coupled to the element: the
// element's own href, then the first descendant anchor, then a wrapping
// ancestor anchor. Returns "" when the element shares no container with
// an anchor.
func anchorHref(n *html.Node) string {
	if href := ownHref(n); href != "" {
		return href
	}
	if a, err := htmlquery.Query(n, "descendant::a[@href]"); err == nil && a != nil {
		if href := strings.TrimSpace(htmlquery.SelectAttr(a, "href")); href != "" {
			return href
		}
	}
	for p := n.Parent; p != nil; p = p.Parent {
		if href := ownHref(p); href != "" {
			return href
		}
	}
	return ""
}

// ownHref returns the href attribute when the node itself is an anchor.
func ownHref(n *html.Node) string {
	if n.Type != html.ElementNode || n.Data != "a" {
		return ""
	}
	return strings.TrimSpace(htmlquery.SelectAttr(n, "href"))
}

// resolveURL resolves a possibly relative URL against a base URL.
func resolveURL(raw, base string) string {
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "http") {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return raw
	}
	return baseURL.ResolveReference(parsed).String()
}
