package hydraapi

import (
	"path"
	"regexp"
	"strconv"
	"strings"

	foundation "github.com/estafette/estafette-foundation"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

var buildHrefRegex = regexp.MustCompile(`/build/(\d+)/?$`)

// ScrapeEvaluationPage finds the build id of each requested job in the html page of an evaluation;
// every table row linking to both a build and a job is a candidate and the first row for a job wins
func ScrapeEvaluationPage(jobs []string, page string) (buildIDs map[string]int, err error) {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil, errors.Wrap(err, "Failed parsing evaluation page")
	}

	buildIDs = map[string]int{}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if len(buildIDs) == len(jobs) {
			return
		}
		if n.Type == html.ElementNode && n.Data == "tr" {
			job, buildID, ok := scrapeRow(n)
			if ok && foundation.StringArrayContains(jobs, job) {
				if _, found := buildIDs[job]; !found {
					buildIDs[job] = buildID
				}
			}
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return buildIDs, nil
}

func scrapeRow(row *html.Node) (job string, buildID int, ok bool) {
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			href := attr(n, "href")
			if m := buildHrefRegex.FindStringSubmatch(href); m != nil && buildID == 0 {
				buildID, _ = strconv.Atoi(m[1])
			} else if strings.Contains(href, "/job/") && job == "" {
				job = path.Base(strings.TrimSuffix(href, "/"))
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(row)

	return job, buildID, job != "" && buildID != 0
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
