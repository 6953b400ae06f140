//nolint:errcheck,forbidigo,gosec // test utility allows simpler error handling and direct output
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
)

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		fmt.Println("Usage: testserver [options] <listings-page.html> <getallobjects.json>")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	pagePath := args[0]
	apiPath := args[1]

	for _, p := range []string{pagePath, apiPath} {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			log.Fatalf("File does not exist: %s", p)
		}
	}

	http.HandleFunc("/en/offerings/now-for-rent/rooms/studios", func(w http.ResponseWriter, r *http.Request) {
		serveFile(w, pagePath, "text/html; charset=utf-8")
	})

	http.HandleFunc("/portal/object/frontend/getallobjects/format/json", func(w http.ResponseWriter, r *http.Request) {
		serveFile(w, apiPath, "application/json")
	})

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("Test server listening on %s", addr)
	log.Printf("Listings page: %s -> http://localhost%s/en/offerings/now-for-rent/rooms/studios", pagePath, addr)
	log.Printf("Objects API:   %s -> http://localhost%s/portal/object/frontend/getallobjects/format/json", apiPath, addr)
	log.Println("\nFiles are read on each request, so you can edit them while the server is running.")
	log.Printf("\nRun the bot against it with:")
	log.Printf("  LISTINGS_URL=http://localhost%s/en/offerings/now-for-rent/rooms/studios PORTAL_URL=http://localhost%s/portal", addr, addr)

	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func serveFile(w http.ResponseWriter, path, contentType string) {
	content, err := os.ReadFile(path)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to read file: %v", err), http.StatusInternalServerError)
		log.Printf("Error reading %s: %v", path, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Write(content)
	log.Printf("Served %s (%d bytes)", path, len(content))
}
