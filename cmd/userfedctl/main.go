package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type client struct {
	BaseURL   string
	APIKey    string
	OutFormat string // "json" | "text"
	HTTP      *http.Client
}

func (c *client) do(method, path string, body []byte) (int, []byte, error) {
	u := strings.TrimRight(c.BaseURL, "/") + path
	req, err := http.NewRequest(method, u, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	if c.APIKey != "" {
		req.Header.Set("X-API-Key", c.APIKey)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b, nil
}

func (c *client) print(status int, body []byte) {
	if c.OutFormat == "json" {
		var v any
		if json.Unmarshal(body, &v) == nil {
			p, _ := json.MarshalIndent(v, "", "  ")
			fmt.Println(string(p))
			return
		}
	}
	if len(body) > 0 {
		fmt.Println(string(body))
	} else {
		fmt.Printf("status=%d\n", status)
	}
}

func main() {
	var (
		baseURL = envOr("USERFED_URL", "http://localhost:8085")
		apiKey  = envOr("USERFED_API_KEY", "")
		out     = envOr("USERFED_OUT", "text")
		timeout = 30 * time.Second
	)

	root := &cobra.Command{
		Use:   "userfedctl",
		Short: "CLI para el puente de federación UserFed",
	}

	root.PersistentFlags().StringVar(&baseURL, "url", baseURL, "URL base del puente (env USERFED_URL)")
	root.PersistentFlags().StringVar(&apiKey, "api-key", apiKey, "API key del puente (env USERFED_API_KEY)")
	root.PersistentFlags().StringVar(&out, "out", out, "Formato de salida: json|text")

	cl := &client{HTTP: &http.Client{Timeout: timeout}}

	// Los flags se parsean recién en Execute: fijar el cliente acá.
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cl.BaseURL = baseURL
		cl.APIKey = apiKey
		cl.OutFormat = out
	}

	pingCmd := &cobra.Command{
		Use:   "ping",
		Short: "Verifica que el puente esté arriba y la base alcanzable",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := cl.do("GET", "/readyz", nil)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("ping falló: status=%d body=%s", status, string(body))
			}
			if cl.OutFormat == "text" {
				fmt.Println("ok")
				return nil
			}
			cl.print(status, body)
			return nil
		},
	}

	// grupo users
	usersCmd := &cobra.Command{Use: "users", Short: "Operaciones de lectura sobre usuarios federados"}

	var listSearch string
	var listOffset, listLimit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Lista usuarios (opcionalmente paginado y filtrado)",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			if listSearch != "" {
				q.Set("search", listSearch)
			}
			if cmd.Flags().Changed("limit") {
				q.Set("limit", fmt.Sprint(listLimit))
				q.Set("offset", fmt.Sprint(listOffset))
			}
			path := "/v1/users"
			if len(q) > 0 {
				path += "?" + q.Encode()
			}
			status, body, err := cl.do("GET", path, nil)
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}
	listCmd.Flags().StringVar(&listSearch, "search", "", "Término de búsqueda")
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "Offset de la página")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Tamaño de página")

	var countSearch string
	countCmd := &cobra.Command{
		Use:   "count",
		Short: "Cuenta usuarios (opcionalmente filtrado)",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/v1/users/count"
			if countSearch != "" {
				path += "?search=" + url.QueryEscape(countSearch)
			}
			status, body, err := cl.do("GET", path, nil)
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}
	countCmd.Flags().StringVar(&countSearch, "search", "", "Término de búsqueda")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Busca un usuario por id numérico",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := cl.do("GET", "/v1/users/"+url.PathEscape(args[0]), nil)
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}

	var findUsername, findEmail string
	findCmd := &cobra.Command{
		Use:   "find",
		Short: "Busca un usuario por username o email",
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			switch {
			case findUsername != "":
				path = "/v1/users/by-username/" + url.PathEscape(findUsername)
			case findEmail != "":
				path = "/v1/users/by-email/" + url.PathEscape(findEmail)
			default:
				return fmt.Errorf("--username o --email es requerido")
			}
			status, body, err := cl.do("GET", path, nil)
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}
	findCmd.Flags().StringVar(&findUsername, "username", "", "Username exacto")
	findCmd.Flags().StringVar(&findEmail, "email", "", "Email exacto")

	usersCmd.AddCommand(listCmd, countCmd, getCmd, findCmd)

	var valUsername, valPassword string
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Valida credenciales contra la base legada",
		RunE: func(cmd *cobra.Command, args []string) error {
			if valUsername == "" {
				return fmt.Errorf("--username es requerido")
			}
			payload, _ := json.Marshal(map[string]string{
				"username": valUsername,
				"password": valPassword,
			})
			status, body, err := cl.do("POST", "/v1/credentials/validate", payload)
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}
	validateCmd.Flags().StringVar(&valUsername, "username", "", "Username a validar")
	validateCmd.Flags().StringVar(&valPassword, "password", "", "Password en claro")

	root.AddCommand(pingCmd, usersCmd, validateCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
