package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/jsccast/yaml"
)

// TCPService accepts connections on the given port and runs a
// Listener on each one.  The service stops accepting when some client
// says "shutdown".
func (s *Service) TCPService(ctx context.Context, port string) error {
	log.Printf("TCPService listening on %s", port)

	l, err := net.Listen("tcp", port)
	if err != nil {
		return err
	}

	shutdown := make(chan bool, 1)

	for {
		conn, err := l.Accept()
		if err != nil {
			return err
		}
		go s.serveConn(ctx, conn, l, shutdown)
	}
}

func (s *Service) serveConn(ctx context.Context, conn net.Conn, l net.Listener, shutdown chan bool) {
	defer conn.Close()

	if err := s.Listener(ctx, bufio.NewReader(conn), conn, shutdown); err != nil {
		if err != io.EOF {
			log.Printf("TCPService connection error %s", err)
		}
	}

	// A client that asked for a shutdown takes the listener down
	// with it.
	select {
	case <-shutdown:
		l.Close()
	default:
	}
}

// Listener reads operations, one JSON object per line, and writes
// back each completed operation.
//
// A few bare directives are also understood: "json", "prettyjson",
// and "yaml" switch the rendering; "sleep DURATION" does what it
// says; "shutdown" stops the whole listener.  Blank lines and lines
// starting with "#" are ignored.
func (s *Service) Listener(ctx context.Context, in *bufio.Reader, out io.Writer, shutdown chan bool) error {
	render := "prettyjson"

	var writing sync.Mutex

	say := func(x interface{}) bool {
		writing.Lock()
		defer writing.Unlock()

		var bs []byte
		var err error
		switch render {
		case "json":
			bs, err = json.Marshal(&x)
		case "yaml":
			bs, err = yaml.Marshal(&x)
		default: // prettyjson
			bs, err = json.MarshalIndent(&x, "", "  ")
		}
		if err != nil {
			log.Printf("Service.Listener warning on rendering: %s on %#v", err, x)
			bs = []byte(fmt.Sprintf("error: %s on %#v", err, x))
		}

		bs = append(bs, '\n')

		if _, err = out.Write(bs); err != nil {
			log.Printf("Service.Listener warning on Write: %s", err)
			return false
		}

		return true
	}

	complain := func(err error) bool {
		return say(map[string]interface{}{
			"error": err.Error(),
		})
	}

	for {
		line, err := in.ReadBytes('\n')
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		sl := strings.TrimSpace(string(line))

		if strings.HasPrefix(sl, "#") || sl == "" {
			continue
		}

		switch sl {
		case "shutdown":
			log.Printf("client says to shutdown")
			shutdown <- true
			return nil
		case "json", "prettyjson", "yaml":
			render = sl
			if !say("okay") {
				return nil
			}
			continue
		}

		if parts := strings.SplitN(sl, " ", 2); parts[0] == "sleep" {
			if len(parts) != 2 {
				if !complain(fmt.Errorf("sleep DURATION")) {
					return nil
				}
				continue
			}
			d, err := time.ParseDuration(parts[1])
			if err != nil {
				if !complain(err) {
					return nil
				}
				continue
			}
			time.Sleep(d)
			continue
		}

		var op SOp
		if err := json.Unmarshal([]byte(sl), &op); err != nil {
			if !complain(err) {
				return err
			}
			continue
		}
		if err = op.Do(ctx, s); err != nil {
			// The op carries its own Err; the client still gets
			// the rendition below.
			if !complain(err) {
				return err
			}
			continue
		}

		if !say(&op) {
			return nil
		}
	}

	return nil
}
