package panel

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	loginPath  = "/login"
	reportPath = "/relatorio/relatorio19"
)

// Client acessa o painel por HTTP direto, sem navegador.
// O estado de login fica nos cookies do jar.
type Client struct {
	BaseURL  string
	Email    string
	Password string
	UseMenu  bool
	Sessions *SessionStore

	http *http.Client
}

func NewClient(baseURL, email, password string, sessions *SessionStore) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		Email:    email,
		Password: password,
		Sessions: sessions,
		http: &http.Client{
			Timeout: 60 * time.Second,
			Jar:     jar,
		},
	}
}

// Login autentica no painel. Se houver sessão válida no cache, o POST
// de login é pulado.
func (c *Client) Login(ctx context.Context) error {
	if c.restoreSession(ctx) {
		log.Println("[Panel] Sessão reaproveitada do cache")
		return nil
	}

	form := url.Values{
		"email":    {c.Email},
		"password": {c.Password},
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+loginPath, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("falha no login: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	// Login bem sucedido redireciona para fora de /login
	if strings.Contains(resp.Request.URL.Path, loginPath) {
		return fmt.Errorf("falha no login: verifique as credenciais")
	}

	c.saveSession(ctx)
	log.Println("[Panel] Login realizado com sucesso")
	return nil
}

// FetchReport navega até o relatório de assinantes e devolve o HTML da página.
func (c *Client) FetchReport(ctx context.Context) (string, error) {
	if c.UseMenu {
		return c.fetchViaMenu(ctx)
	}
	return c.fetchDirect(ctx)
}

func (c *Client) fetchDirect(ctx context.Context) (string, error) {
	resp, err := c.get(ctx, c.BaseURL+reportPath)
	if err != nil {
		return "", fmt.Errorf("falha ao carregar o relatório: %w", err)
	}
	defer resp.Body.Close()

	if strings.Contains(resp.Request.URL.Path, loginPath) {
		return "", fmt.Errorf("sessão expirada: redirecionado para o login")
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("falha ao ler o relatório: %w", err)
	}
	return string(b), nil
}

// fetchViaMenu percorre o menu lateral como na navegação manual:
// Relatórios → Assinaturas → Quantidade de assinantes.
func (c *Client) fetchViaMenu(ctx context.Context) (string, error) {
	resp, err := c.get(ctx, c.BaseURL+"/")
	if err != nil {
		return "", fmt.Errorf("falha ao carregar o painel: %w", err)
	}
	defer resp.Body.Close()

	if strings.Contains(resp.Request.URL.Path, loginPath) {
		return "", fmt.Errorf("sessão expirada: redirecionado para o login")
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("falha ao ler o menu: %w", err)
	}

	href, ok := doc.Find("#kt_aside_menu a[href='" + reportPath + "']").Attr("href")
	if !ok {
		href, ok = doc.Find("a[href='" + reportPath + "']").Attr("href")
	}
	if !ok {
		return "", fmt.Errorf("link do relatório não encontrado no menu")
	}

	resp2, err := c.get(ctx, c.BaseURL+href)
	if err != nil {
		return "", fmt.Errorf("falha ao carregar o relatório: %w", err)
	}
	defer resp2.Body.Close()

	b, err := io.ReadAll(resp2.Body)
	if err != nil {
		return "", fmt.Errorf("falha ao ler o relatório: %w", err)
	}
	return string(b), nil
}

// restoreSession tenta reaproveitar os cookies guardados no Redis e
// confirma que a sessão ainda vale abrindo o relatório.
func (c *Client) restoreSession(ctx context.Context) bool {
	if c.Sessions == nil {
		return false
	}

	cookies, err := c.Sessions.Get(ctx, c.Email)
	if err != nil || len(cookies) == 0 {
		return false
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return false
	}
	c.http.Jar.SetCookies(u, cookies)

	resp, err := c.get(ctx, c.BaseURL+reportPath)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return !strings.Contains(resp.Request.URL.Path, loginPath)
}

func (c *Client) saveSession(ctx context.Context) {
	if c.Sessions == nil {
		return
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return
	}
	if err := c.Sessions.Save(ctx, c.Email, c.http.Jar.Cookies(u)); err != nil {
		log.Printf("[Panel] Erro ao salvar sessão no cache: %v", err)
	}
}

func (c *Client) get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	return c.http.Do(req)
}
