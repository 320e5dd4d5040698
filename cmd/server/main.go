package main

import (
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"time"

	"dadam/internal/legacy"
	"dadam/internal/router"
	"dadam/internal/services"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	remote := services.RemoteEnabled()
	if remote {
		log.Printf("Remote mode: proxying %s", os.Getenv("DADAM_API_BASE"))
	} else {
		log.Println("Local mode: using this process's database")
		legacy.Init()
	}

	r := gin.Default()

	// Setup Sessions
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("dadam_session", store))

	// Load Templates using Multitemplate to avoid collision and allow handler names
	r.HTMLRender = loadTemplates("./web/templates")

	// Static Assets
	r.Static("/static", "./web/static")

	if remote {
		router.RegisterRemote(r)
	} else {
		router.RegisterLegacy(r)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("dadam server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func loadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	includes, err := filepath.Glob(templatesDir + "/includes/*.html")
	if err != nil {
		panic(err)
	}

	assemble := func(view string) []string {
		files := make([]string, 0)
		files = append(files, layouts...)
		files = append(files, includes...)
		files = append(files, view)
		return files
	}

	funcMap := template.FuncMap{
		"dict": func(values ...interface{}) (map[string]interface{}, error) {
			if len(values)%2 != 0 {
				return nil, fmt.Errorf("invalid dict call")
			}
			dict := make(map[string]interface{}, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict keys must be strings")
				}
				dict[key] = values[i+1]
			}
			return dict, nil
		},
		"add": func(a, b int) int {
			return a + b
		},
		"timeAgo": func(t interface{}) string {
			var timeVal time.Time
			switch v := t.(type) {
			case time.Time:
				timeVal = v
			default:
				return ""
			}

			duration := time.Since(timeVal)
			seconds := int(duration.Seconds())

			if seconds < 60 {
				return "방금 전"
			} else if seconds < 3600 {
				return fmt.Sprintf("%d분 전", seconds/60)
			} else if seconds < 86400 {
				return fmt.Sprintf("%d시간 전", seconds/3600)
			} else if seconds < 2592000 {
				return fmt.Sprintf("%d일 전", seconds/86400)
			} else if seconds < 31536000 {
				return fmt.Sprintf("%d개월 전", seconds/2592000)
			}
			return fmt.Sprintf("%d년 전", seconds/31536000)
		},
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
	}

	// Manual registration to ensure keys match handler expectation
	r.AddFromFilesFuncs("auth/login.html", funcMap, assemble(templatesDir+"/views/auth/login.html")...)
	r.AddFromFilesFuncs("auth/signup.html", funcMap, assemble(templatesDir+"/views/auth/signup.html")...)

	r.AddFromFilesFuncs("home/index.html", funcMap, assemble(templatesDir+"/views/home/index.html")...)
	r.AddFromFilesFuncs("answer/detail.html", funcMap, assemble(templatesDir+"/views/answer/detail.html")...)
	r.AddFromFilesFuncs("archive/show.html", funcMap, assemble(templatesDir+"/views/archive/show.html")...)

	r.AddFromFilesFuncs("family/list.html", funcMap, assemble(templatesDir+"/views/family/list.html")...)
	r.AddFromFilesFuncs("family/invite.html", funcMap, assemble(templatesDir+"/views/family/invite.html")...)

	r.AddFromFilesFuncs("calendar/show.html", funcMap, assemble(templatesDir+"/views/calendar/show.html")...)
	r.AddFromFilesFuncs("calendar/day.html", funcMap, assemble(templatesDir+"/views/calendar/day.html")...)

	r.AddFromFilesFuncs("games/index.html", funcMap, assemble(templatesDir+"/views/games/index.html")...)
	r.AddFromFilesFuncs("games/balance.html", funcMap, assemble(templatesDir+"/views/games/balance.html")...)
	r.AddFromFilesFuncs("games/quiz.html", funcMap, assemble(templatesDir+"/views/games/quiz.html")...)

	r.AddFromFilesFuncs("notification/list.html", funcMap, assemble(templatesDir+"/views/notification/list.html")...)

	r.AddFromFilesFuncs("error.html", funcMap, assemble(templatesDir+"/views/error.html")...)

	return r
}
