package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-admin-secret shared secret of admin endpoints
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
//	-passes-templates pass templates directory
//	-passes-web-service-url web service URL written into passes
//	-passes-cert / -passes-key / -passes-key-password / -passes-wwdr / -passes-p12
//	-orders-templates, -orders-web-service-url, -orders-cert, ... (same for orders)
//	-signing-engine native|openssl (both kinds)
//	-push-endpoint APNs base URL; empty disables push
//	-orphan-sweep-interval periodic orphan device sweep interval
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("wallet-issuer", flag.ContinueOnError)

	var serverAddress NetAddress
	var cfg StructuredConfig
	var signingEngine string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.AdminSecret, "admin-secret", "", "Admin shared secret")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.StringVar(&signingEngine, "signing-engine", "", "Signing engine: native or openssl")
	fs.StringVar(&cfg.Push.Endpoint, "push-endpoint", "", "APNs endpoint; empty disables push")
	fs.DurationVar(&cfg.Workers.OrphanSweepInterval, "orphan-sweep-interval", 0, "Orphan device sweep interval")

	walletFlags(fs, "passes", &cfg.Passes)
	walletFlags(fs, "orders", &cfg.Orders)

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Passes.Signing.Engine = signingEngine
	cfg.Orders.Signing.Engine = signingEngine

	return &cfg, nil
}

func walletFlags(fs *flag.FlagSet, prefix string, w *Wallet) {
	fs.StringVar(&w.TemplatesDir, prefix+"-templates", "", "Templates directory for "+prefix)
	fs.StringVar(&w.WebServiceURL, prefix+"-web-service-url", "", "Web service URL for "+prefix)
	fs.StringVar(&w.Signing.CertPath, prefix+"-cert", "", "Signing certificate (PEM) for "+prefix)
	fs.StringVar(&w.Signing.KeyPath, prefix+"-key", "", "Signing key (PEM) for "+prefix)
	fs.StringVar(&w.Signing.KeyPassword, prefix+"-key-password", "", "Signing key password for "+prefix)
	fs.StringVar(&w.Signing.ChainPath, prefix+"-wwdr", "", "Intermediate certificate for "+prefix)
	fs.StringVar(&w.Signing.P12Path, prefix+"-p12", "", "PKCS#12 identity for "+prefix)
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
