package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// AddTrailingSlash makes relative paths resolve below the base url
func AddTrailingSlash(url string) string {
	if strings.HasSuffix(url, "/") {
		return url
	}
	return url + "/"
}

// SplitJobs splits a space separated list of job names
func SplitJobs(jobs string) []string {
	return strings.Fields(jobs)
}

// ParseBuildProducts parses a comma or space separated list of build product numbers
func ParseBuildProducts(value string) (buildProducts []int, err error) {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ' '
	})

	buildProducts = make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("build product %q is not a number: %w", f, err)
		}
		buildProducts = append(buildProducts, n)
	}

	return buildProducts, nil
}

// ParseFlag treats any non-empty value other than an explicit false as true
func ParseFlag(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	return true
}

// LinkHeaderHasRel checks whether an rfc 8288 Link header contains a link with the given relation, e.g. next
func LinkHeaderHasRel(linkHeader, rel string) bool {
	for _, link := range strings.Split(linkHeader, ",") {
		params := strings.Split(link, ";")
		if len(params) < 2 {
			continue
		}
		for _, param := range params[1:] {
			key, value, found := strings.Cut(strings.TrimSpace(param), "=")
			if !found || !strings.EqualFold(strings.TrimSpace(key), "rel") {
				continue
			}
			for _, r := range strings.Fields(strings.Trim(strings.TrimSpace(value), `"`)) {
				if strings.EqualFold(r, rel) {
					return true
				}
			}
		}
	}

	return false
}

// ResolveURL resolves ref against base; absolute refs are returned as is
func ResolveURL(base, ref string) (string, error) {
	refURL, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	if refURL.IsAbs() {
		return ref, nil
	}

	baseURL, err := url.Parse(AddTrailingSlash(base))
	if err != nil {
		return "", err
	}

	return baseURL.ResolveReference(refURL).String(), nil
}
