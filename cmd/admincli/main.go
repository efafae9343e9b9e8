// admincli is a small command-line admin panel for the Dream Diary API:
// login with lockout, content listing and creation, and the destructive
// reseed.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/soniwriter/dreamdiary/internal/client"
	"github.com/soniwriter/dreamdiary/internal/server/models"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: admincli [-addr URL] [-session FILE] <command> [args]

commands:
  login -u USER -p PASSWORD     authenticate and remember the session
  logout                        forget the stored session
  status                        server health and admin account state
  list {poems|movies|books|personal}
  add-poem -title T -content C [-date D] [-tags "a,b"]
  add-movie -title T -director D -year Y [-rating N] [-actors "a,b"] [-genres "a,b"] [-description S]
  add-book -title T -author A -read-date D [-rating N] [-genres "a,b"] [-thoughts S] [-quote S]
  delete {poems|movies|books} ID
  set-personal KEY VALUE
  seed                          wipe content and reload fixtures`)
	os.Exit(2)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".dreamdiary-session.json"
	}
	return filepath.Join(home, ".dreamdiary", "session.json")
}

func main() {
	addr := flag.String("addr", "http://localhost:8080", "server base URL")
	sessionPath := flag.String("session", defaultSessionPath(), "session file path")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store := client.NewSessionStore(*sessionPath)
	session, err := store.Load()
	if err != nil {
		fatal("session load: %v", err)
	}

	api := client.NewAPI(*addr)
	api.AccessToken = session.AccessToken

	switch args[0] {
	case "login":
		runLogin(ctx, api, store, session, args[1:])
	case "logout":
		if err := store.Clear(); err != nil {
			fatal("logout: %v", err)
		}
		fmt.Println("logged out")
	case "status":
		runStatus(ctx, api)
	case "list":
		runList(ctx, api, args[1:])
	case "add-poem":
		runAddPoem(ctx, api, args[1:])
	case "add-movie":
		runAddMovie(ctx, api, args[1:])
	case "add-book":
		runAddBook(ctx, api, args[1:])
	case "delete":
		runDelete(ctx, api, args[1:])
	case "set-personal":
		if len(args) != 3 {
			usage()
		}
		if err := api.SetPersonalInfo(ctx, map[string]string{args[1]: args[2]}); err != nil {
			fatal("set-personal: %v", err)
		}
		fmt.Printf("set %q\n", args[1])
	case "seed":
		result, err := api.Seed(ctx)
		if err != nil {
			fatal("seed: %v", err)
		}
		fmt.Printf("seeded: %d poems, %d movies, %d books, %d personal-info pairs (admin %s)\n",
			result.Poems, result.Movies, result.Books, result.PersonalInfo, result.Admin)
	default:
		usage()
	}
}

func runLogin(ctx context.Context, api *client.API, store *client.SessionStore, session *client.Session, args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	fs.Parse(args)

	if *username == "" || *password == "" {
		fatal("login requires -u and -p")
	}

	now := time.Now()
	if locked, until := session.Locked(now); locked {
		fatal("too many failed attempts, try again after %s", until.Format(time.Kitchen))
	}

	result, err := api.Login(ctx, *username, *password)
	if err != nil {
		session.RecordFailure(now)
		if saveErr := store.Save(session); saveErr != nil {
			fatal("session save: %v", saveErr)
		}
		fatal("login failed: %v", err)
	}

	session.RecordSuccess(result.User.Username, result.AccessToken, result.SessionToken)
	if err := store.Save(session); err != nil {
		fatal("session save: %v", err)
	}
	fmt.Printf("logged in as %s\n", result.User.Username)
}

func runStatus(ctx context.Context, api *client.API) {
	if err := api.Health(ctx); err != nil {
		fatal("server unreachable: %v", err)
	}
	exists, err := api.AdminExists(ctx)
	if err != nil {
		fatal("status: %v", err)
	}
	fmt.Printf("server: ok, admin provisioned: %v\n", exists)
}

func runList(ctx context.Context, api *client.API, args []string) {
	if len(args) != 1 {
		usage()
	}
	switch args[0] {
	case "poems":
		poems, err := api.ListPoems(ctx)
		if err != nil {
			fatal("list poems: %v", err)
		}
		for _, p := range poems {
			fmt.Printf("%s\t%s\t[%s]\n", p.ID, p.Title, client.JoinListField(p.Tags))
		}
	case "movies":
		movies, err := api.ListMovies(ctx)
		if err != nil {
			fatal("list movies: %v", err)
		}
		for _, m := range movies {
			fmt.Printf("%s\t%s (%d)\t%s\trating=%d\n", m.ID, m.Title, m.Year, m.Director, m.Rating)
		}
	case "books":
		books, err := api.ListBooks(ctx)
		if err != nil {
			fatal("list books: %v", err)
		}
		for _, b := range books {
			fmt.Printf("%s\t%s\t%s\trating=%d\n", b.ID, b.Title, b.Author, b.Rating)
		}
	case "personal":
		info, err := api.GetPersonalInfo(ctx)
		if err != nil {
			fatal("list personal: %v", err)
		}
		for k, v := range info {
			fmt.Printf("%s: %s\n", k, v)
		}
	default:
		usage()
	}
}

func runAddPoem(ctx context.Context, api *client.API, args []string) {
	fs := flag.NewFlagSet("add-poem", flag.ExitOnError)
	title := fs.String("title", "", "poem title")
	content := fs.String("content", "", "poem text")
	date := fs.String("date", "", "date written")
	tags := fs.String("tags", "", "comma-separated tags")
	fs.Parse(args)

	created, err := api.CreatePoem(ctx, &models.Poem{
		Title:   *title,
		Content: *content,
		Date:    *date,
		Tags:    client.ParseListField(*tags),
	})
	if err != nil {
		fatal("add-poem: %v", err)
	}
	fmt.Printf("created %s\n", created.ID)
}

func runAddMovie(ctx context.Context, api *client.API, args []string) {
	fs := flag.NewFlagSet("add-movie", flag.ExitOnError)
	title := fs.String("title", "", "movie title")
	director := fs.String("director", "", "director")
	year := fs.Int("year", 0, "release year")
	rating := fs.String("rating", "", "rating 1-5")
	actors := fs.String("actors", "", "comma-separated actors")
	genres := fs.String("genres", "", "comma-separated genres")
	description := fs.String("description", "", "description")
	fs.Parse(args)

	r, err := client.ParseRatingField(*rating)
	if err != nil {
		fatal("add-movie: %v", err)
	}

	created, err := api.CreateMovie(ctx, &models.Movie{
		Title:       *title,
		Director:    *director,
		Year:        *year,
		Rating:      r,
		Actors:      client.ParseListField(*actors),
		Genres:      client.ParseListField(*genres),
		Description: *description,
	})
	if err != nil {
		fatal("add-movie: %v", err)
	}
	fmt.Printf("created %s\n", created.ID)
}

func runAddBook(ctx context.Context, api *client.API, args []string) {
	fs := flag.NewFlagSet("add-book", flag.ExitOnError)
	title := fs.String("title", "", "book title")
	author := fs.String("author", "", "author")
	readDate := fs.String("read-date", "", "when it was read")
	rating := fs.String("rating", "", "rating 1-5")
	genres := fs.String("genres", "", "comma-separated genres")
	thoughts := fs.String("thoughts", "", "notes")
	quote := fs.String("quote", "", "favorite quote")
	fs.Parse(args)

	r, err := client.ParseRatingField(*rating)
	if err != nil {
		fatal("add-book: %v", err)
	}

	created, err := api.CreateBook(ctx, &models.Book{
		Title:    *title,
		Author:   *author,
		ReadDate: *readDate,
		Rating:   r,
		Genres:   client.ParseListField(*genres),
		Thoughts: *thoughts,
		Quote:    *quote,
	})
	if err != nil {
		fatal("add-book: %v", err)
	}
	fmt.Printf("created %s\n", created.ID)
}

func runDelete(ctx context.Context, api *client.API, args []string) {
	if len(args) != 2 {
		usage()
	}
	var err error
	switch args[0] {
	case "poems":
		err = api.DeletePoem(ctx, args[1])
	case "movies":
		err = api.DeleteMovie(ctx, args[1])
	case "books":
		err = api.DeleteBook(ctx, args[1])
	default:
		usage()
	}
	if err != nil {
		fatal("delete: %v", err)
	}
	fmt.Printf("deleted %s\n", args[1])
}
