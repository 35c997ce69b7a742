// wakeup sends a one-shot TriggerScript RPC to a HUD board and exits. The
// exit code reports the outcome: 0 when the remote script launched, 2 when
// the remote reported failure, 1 when the RPC itself failed.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/aipex-labs/hudlink/internal/wakeuppb"
)

const defaultPort = "50050"

var (
	target  = flag.String("target", "AipexCB.local:50050", "gRPC target (host:port) or hostname(.local)")
	script  = flag.String("script", "wakeup", "script name to trigger")
	args    = flag.String("args", "", "argument string for the script")
	timeout = flag.Duration("timeout", 5*time.Second, "RPC timeout")
)

func main() {
	flag.Parse()
	os.Exit(run(*target, *script, *args, *timeout))
}

func run(target, script, args string, timeout time.Duration) int {
	addr := normalizeTarget(target, resolveHost)

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "wakeup: connect %s: %v\n", addr, err)
		return 1
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client := wakeuppb.NewWakeUpServiceClient(conn)
	resp, err := client.TriggerScript(ctx, &wakeuppb.WakeUpRequest{ScriptName: script, Args: args})
	if err != nil {
		st, _ := status.FromError(err)
		fmt.Fprintf(os.Stderr, "wakeup: RPC failed: code=%s msg=%s\n", st.Code(), st.Message())
		return 1
	}

	fmt.Printf("wakeup: success=%v pid=%d msg=%q\n", resp.GetSuccess(), resp.GetProcessId(), resp.GetMessage())
	if !resp.GetSuccess() {
		return 2
	}
	return 0
}

// normalizeTarget turns the flag value into host:port. A missing port gets
// the default, and a .local hostname is resolved up front so the dial does
// not depend on the system resolver handling mDNS. Resolution failure passes
// the literal name through unchanged.
func normalizeTarget(target string, resolve func(string) (string, bool)) string {
	host, port, err := net.SplitHostPort(target)
	if err != nil {
		host, port = target, defaultPort
	}
	if strings.HasSuffix(host, ".local") || strings.HasSuffix(host, ".local.") {
		if addr, ok := resolve(host); ok {
			host = addr
		}
	}
	return net.JoinHostPort(host, port)
}

// resolveHost looks up name and prefers an IPv4 address for readability.
func resolveHost(name string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, strings.TrimSuffix(name, "."))
	if err != nil || len(addrs) == 0 {
		return "", false
	}
	for _, a := range addrs {
		if v4 := a.IP.To4(); v4 != nil {
			return v4.String(), true
		}
	}
	return addrs[0].IP.String(), true
}
