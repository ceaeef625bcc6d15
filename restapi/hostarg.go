package restapi

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

type hostDefaults struct {
	scheme   string
	port     int
	basePath string
}

// parseHostArg interprets a host argument. A complete URL is taken as-is;
// a bare "host[:port]" gets the default scheme, port and base path
// applied. realHost, when set, names the host addressed at the transport
// level (e.g. when the connection is tunneled) and overrides the host
// derived from the argument.
func parseHostArg(host, realHost string, defaults hostDefaults) (baseURL, parsedRealHost string, err error) {
	if host == "" {
		return "", "", errors.New("host must not be empty")
	}

	var parsedHost string

	if parsed, parseErr := url.Parse(host); parseErr == nil && parsed.Scheme != "" && parsed.Host != "" {
		baseURL = strings.TrimRight(host, "/")
		parsedHost = parsed.Host
		if at := strings.LastIndex(parsedHost, "@"); at >= 0 {
			parsedHost = parsedHost[at+1:]
		}
	} else {
		parsedHost = appendDefaultPort(host, defaults.port)
		baseURL = defaults.scheme + "://" + parsedHost
		if basePath := strings.Trim(defaults.basePath, "/"); basePath != "" {
			baseURL += "/" + basePath
		}
	}

	if realHost == "" {
		parsedRealHost = parsedHost
	} else {
		parsedRealHost = appendDefaultPort(realHost, defaults.port)
	}

	return baseURL, parsedRealHost, nil
}

// appendDefaultPort adds :port to a host that carries none. IPv6 literals
// must be bracketed for the port to be distinguishable.
func appendDefaultPort(arg string, port int) string {
	if port == 0 {
		return arg
	}

	if strings.HasPrefix(arg, "[") {
		if closing := strings.Index(arg, "]"); closing >= 0 && strings.Contains(arg[closing:], ":") {
			return arg
		}
		return arg + ":" + strconv.Itoa(port)
	}

	if strings.Contains(arg, ":") {
		return arg
	}

	return arg + ":" + strconv.Itoa(port)
}
