package fetcher

import (
	"context"
	"fmt"
	"net"
	"time"

	utls "github.com/refraction-networking/utls"
)

// CertExpiry performs a live TLS handshake against host:port with a Chrome
// fingerprint and returns the number of days until the leaf certificate
// expires. A negative value means the certificate has already expired.
func CertExpiry(ctx context.Context, host string, port int) (int, error) {
	addr := net.JoinHostPort(host, fmt.Sprintf("%d", port))

	dialer := &net.Dialer{Timeout: 10 * time.Second}
	rawConn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return 0, fmt.Errorf("cert: dial %s: %w", addr, err)
	}

	tlsConn := utls.UClient(rawConn, &utls.Config{
		ServerName: host,
	}, utls.HelloChrome_Auto)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		rawConn.Close()
		return 0, fmt.Errorf("cert: handshake with %s: %w", host, err)
	}
	defer tlsConn.Close()

	certs := tlsConn.ConnectionState().PeerCertificates
	if len(certs) == 0 {
		return 0, fmt.Errorf("cert: no peer certificates from %s", host)
	}

	days := int(time.Until(certs[0].NotAfter).Hours() / 24)
	return days, nil
}
