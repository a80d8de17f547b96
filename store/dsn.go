package store

import (
	"fmt"
	"net/url"
	"strings"
)

// DSN is the parsed form of `<driver>://<path>?<options>`.
type DSN struct {
	Driver string
	Path   string
	Params url.Values
}

// ParseDSN splits a DSN into its driver, path and options. A host component
// is treated as the first path segment so that `driver://relative.db` and
// `driver:///absolute/path.db` both resolve to a file system path.
func ParseDSN(dsn string) (*DSN, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot parse dsn %q: %w", dsn, err)
	}

	if u.Scheme == "" {
		return nil, fmt.Errorf("dsn %q has no driver scheme", dsn)
	}

	var paths []string
	if u.Host != "" {
		paths = append(paths, u.Host)
	}

	if u.Path != "" {
		paths = append(paths, u.Path)
	}

	return &DSN{
		Driver: u.Scheme,
		Path:   strings.Join(paths, ""),
		Params: u.Query(),
	}, nil
}

// RemoveDSNOptions takes a DSN url string and removes from it any query options
// matching one of the `key` received in parameter.
//
// For example, transforms `kv://path?option1=value&option2=test&option3=any` to
// `kv://path?option2=test` when passing `option1` and `option3` as the keys.
func RemoveDSNOptions(dsn string, keys ...string) (string, error) {
	dsnURL, err := url.Parse(dsn)
	if err != nil {
		return "", err
	}

	query := dsnURL.Query()
	if len(query) == 0 {
		return dsnURL.String(), nil
	}

	for _, key := range keys {
		query.Del(key)
	}

	dsnURL.RawQuery = query.Encode()
	return dsnURL.String(), nil
}
