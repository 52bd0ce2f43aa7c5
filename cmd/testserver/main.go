//nolint:errcheck,forbidigo,gosec // test utility allows simpler error handling and direct output
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/color"
	"log"
	"net/http"
	"os"

	"github.com/disintegration/imaging"
)

// unauthorized statuses are answered the way the real upstream does, with 401 and a detail message
var unauthorizedDetails = map[string]string{
	"deleted":    "This room is deleted.",
	"banned":     "This room has been banned.",
	"geoblocked": "This room is not available to your region or gender.",
	"password":   "This room requires a password.",
}

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: testserver [options] <rooms.json>")
		fmt.Println("\nrooms.json maps usernames to statuses, e.g. {\"alice\": \"public\", \"bob\": \"banned\"}")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	roomsPath := args[0]
	if _, err := os.Stat(roomsPath); os.IsNotExist(err) {
		log.Fatalf("Rooms file does not exist: %s", roomsPath)
	}

	http.HandleFunc("GET /api/chatvideocontext/{username}/", func(w http.ResponseWriter, r *http.Request) {
		username := r.PathValue("username")
		status, ok := readStatus(roomsPath, username)
		switch {
		case !ok || status == "canceled":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte("<html><body>It's probably just a broken link, or perhaps a cancelled broadcaster.</body></html>"))
		case status == "challenge":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte("<html><head><title>Just a moment...</title></head></html>"))
		case unauthorizedDetails[status] != "":
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": unauthorizedDetails[status]})
		default:
			writeJSON(w, http.StatusOK, map[string]string{"room_status": status})
		}
		log.Printf("Served %s: %s", username, status)
	})

	http.HandleFunc("GET /ri/{file}", func(w http.ResponseWriter, r *http.Request) {
		img := imaging.New(320, 180, color.NRGBA{R: 200, G: 60, B: 90, A: 255})
		w.Header().Set("Content-Type", "image/jpeg")
		if err := imaging.Encode(w, img, imaging.JPEG); err != nil {
			log.Printf("Error encoding snapshot %s: %v", r.PathValue("file"), err)
		}
	})

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("Test server listening on %s", addr)
	log.Printf("Room info: ROOM_INFO_URL=http://localhost%s/api/chatvideocontext/%%s/", addr)
	log.Printf("Snapshots: SNAPSHOT_URL=http://localhost%s/ri/%%s.jpg", addr)
	log.Println("\nThe rooms file is read on each request, so you can edit it while the server is running.")

	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func readStatus(path, username string) (string, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading %s: %v", path, err)
		return "", false
	}

	statuses := map[string]string{}
	if err = json.Unmarshal(content, &statuses); err != nil {
		log.Printf("Error decoding %s: %v", path, err)
		return "", false
	}

	status, ok := statuses[username]
	return status, ok
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
