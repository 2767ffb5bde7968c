// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Command cliqueserve wires the clique dispatcher to the HTTP
// adapter and listens for POST /api/find-max-clique requests.
package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/maxclique/clique"
	"github.com/maxclique/clique/httpapi"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	h := httpapi.NewHandler(clique.Solve)
	log.Printf("cliqueserve: listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, h))
}
