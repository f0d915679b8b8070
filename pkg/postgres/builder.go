package postgres

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
)

// ConnectionBuilder returns a postgres URL. Credentials are escaped.
func ConnectionBuilder(host string, port int, user, password, dbName, sslMode string) string {
	u := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(host, strconv.Itoa(port)),
		Path:     "/" + dbName,
		RawQuery: fmt.Sprintf("sslmode=%s", url.QueryEscape(sslMode)),
	}

	if user != "" {
		u.User = url.UserPassword(user, password)
	}

	return u.String()
}
