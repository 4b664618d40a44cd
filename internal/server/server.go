package server

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/enb/bemfront/internal/builder"
	"github.com/enb/bemfront/internal/tlogger"
	"github.com/enb/bemfront/internal/watcher"

	_ "embed"
)

//go:embed livereload.html
var liveReloadScript []byte

var upgrader = websocket.Upgrader{
	HandshakeTimeout: 10 * time.Second,
	Error: func(w http.ResponseWriter, r *http.Request, status int, reason error) {
		w.WriteHeader(500)
	},
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Server struct {
	port         string
	override404  string
	reloadBroker *Broker
	buildtool    *builder.Builder
}

func NewServer(buildtool *builder.Builder, port string, override404 string) *Server {
	return &Server{
		port:         port,
		override404:  override404,
		reloadBroker: newBroker(),
		buildtool:    buildtool,
	}
}

func (s *Server) TriggerReload() {
	s.reloadBroker.Publish(struct{}{})
}

func (s *Server) Start(withBuilder bool) error {
	err := s.buildtool.Init()
	if err != nil {
		return err
	}

	if withBuilder {
		if err := s.buildtool.Build(context.Background()); err != nil {
			tlogger.Error("msg", "Initial build failed", "err", err)
			os.Exit(1)
		}

		watched := make([]string, 0, len(s.buildtool.Config.Levels)+1)
		for _, level := range s.buildtool.Config.Levels {
			watched = append(watched, filepath.Join(s.buildtool.RootFolder, level))
		}
		watched = append(watched, filepath.Join(s.buildtool.RootFolder, s.buildtool.Config.KeysetsDir))

		updates := watcher.StartWatcher(watched...)

		go s.reloadBroker.Start()

		go func() {
			for {
				<-updates
			rootFor:
				for {
					select {
					case <-updates:
						continue
					case <-time.After(time.Millisecond * 500):
						break rootFor
					}
				}
				if err := s.buildtool.Build(context.Background()); err != nil {
					tlogger.Error("msg", "Rebuild failed", "err", err)
					continue
				}
				s.TriggerReload()
			}
		}()
	}

	r := mux.NewRouter()
	r.PathPrefix("/").HandlerFunc(s.fileServer(s.buildtool.OutputDir, s.override404))

	// We use println here so the address can be copied or opened directly from the terminal
	fmt.Println("Listening on http://localhost:" + s.port)

	return http.ListenAndServe(":"+s.port, r)
}

func (s *Server) fileServer(dir string, override404 string) func(http.ResponseWriter, *http.Request) {
	if override404 != "" && !strings.HasPrefix(override404, "/") {
		override404 = "/" + override404
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/__internal/livereload" {
			s.livereloadHandler(w, r)
			return
		}
	begin:
		upath := r.URL.Path
		if !strings.HasPrefix(upath, "/") {
			upath = "/" + upath
			r.URL.Path = upath
		}

		const indexPage = "index.html"

		fullName := filepath.Join(dir, filepath.FromSlash(path.Clean(upath)))

		fullName, ok := resolveFile(fullName, indexPage)
		if !ok {
			if override404 != "" && r.URL.Path != override404 {
				r.URL.Path = override404
				goto begin
			}
			w.WriteHeader(404)
			w.Write([]byte("404 page not found"))
			return
		}

		content, err := os.Open(fullName)
		if err != nil {
			w.WriteHeader(500)
			w.Write([]byte("Internal error: can't open file"))
			return
		}
		defer content.Close()

		ctype := mime.TypeByExtension(filepath.Ext(fullName))
		if ctype == "" {
			// read a chunk to decide between utf-8 text and binary
			var buf [512]byte
			n, _ := io.ReadFull(content, buf[:])
			ctype = http.DetectContentType(buf[:n])
			if _, err := content.Seek(0, io.SeekStart); err != nil {
				w.WriteHeader(500)
				w.Write([]byte("Internal error: can't seek file: " + err.Error()))
				return
			}
		}
		w.Header().Set("Content-Type", ctype)
		io.Copy(w, content)
		if strings.HasPrefix(ctype, "text/html") {
			_, err = w.Write(liveReloadScript)
			if err != nil {
				tlogger.Error("msg", "could not live reload", "error", err)
			}
		}
	}
}

// resolveFile maps a request path to a servable file, trying the path
// itself, then path+".html", then path/index.html.
func resolveFile(fullName, indexPage string) (string, bool) {
	info, err := os.Stat(fullName)
	if err == nil && !info.IsDir() {
		return fullName, true
	}

	if info, err := os.Stat(fullName + ".html"); err == nil && !info.IsDir() {
		return fullName + ".html", true
	}

	withIndex := filepath.Join(fullName, indexPage)
	if info, err := os.Stat(withIndex); err == nil && !info.IsDir() {
		return withIndex, true
	}

	return "", false
}

func (s *Server) livereloadHandler(w http.ResponseWriter, r *http.Request) {
	tlogger.Debug("msg", "WS Established")

	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		w.WriteHeader(500)
		w.Write([]byte(err.Error()))
		return
	}
	defer c.Close()
	waitCh := s.reloadBroker.Subscribe()
	<-waitCh
	err = c.WriteMessage(websocket.TextMessage, []byte("reload"))
	if err != nil {
		tlogger.Warn("msg", "Reload socket error", "error", err)
	}
	s.reloadBroker.Unsubscribe(waitCh)
}
