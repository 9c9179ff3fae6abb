// Debug tool: accepts TCP connections and dumps what the request parser
// extracts from each one.
package main

import (
	"errors"
	"fmt"
	"net"

	"github.com/nareshv/http-server/internal/request"
)

func main() {
	listener, err := net.Listen("tcp", ":42069")
	if err != nil {
		return
	}
	defer listener.Close()
	fmt.Println("Listening on port 42069...")

	for {
		conn, err := listener.Accept()
		if err != nil {
			fmt.Println("Accept error:", err)
			continue
		}

		go handleConnection(conn)
	}
}

func handleConnection(conn net.Conn) {
	defer conn.Close()

	req, err := request.Parse(conn)
	if err != nil {
		if errors.Is(err, request.ErrMissingHost) {
			fmt.Println("no host header in request")
		} else {
			fmt.Println("read failed:", err)
			return
		}
	}

	fmt.Println("Request Line")
	fmt.Printf("Method: %s\n", req.Method)
	fmt.Printf("Target: %s\n", req.Target)
	fmt.Printf("Proto: %s\n", req.Proto)
	fmt.Printf("Host: %s\n", req.Host)

	body := "Hello from your HTTP server!\n"
	response := fmt.Sprintf(
		"HTTP/1.1 200 OK\r\n"+
			"Content-Length: %d\r\n"+
			"Content-Type: text/plain\r\n"+
			"Connection: close\r\n"+
			"\r\n"+
			"%s",
		len(body),
		body,
	)
	conn.Write([]byte(response))
}
