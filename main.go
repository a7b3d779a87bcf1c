package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"ai_finance_dashboard/dashboard"
	"ai_finance_dashboard/generator"
	"ai_finance_dashboard/server"
)

var verbose bool

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	configPath := flag.String("config", "config/config.json", "path to config.json")
	serve := flag.Bool("serve", false, "start web server")
	addr := flag.String("addr", "", "http listen address when --serve (overrides config.server_addr)")
	prompt := flag.String("prompt", "", "one-shot mode: generate a single insight and print it")
	flag.BoolVar(&verbose, "v", false, "enable info logs")
	flag.Parse()

	cfg, err := dashboard.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	llm, err := buildLLM(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	agent, err := generator.NewAgent(llm, cfg.CompatDecoding)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	ledger := dashboard.NewLedger(verbose, log.Default())

	// Web server mode
	if *serve {
		srv, err := server.New(agent, ledger, log.Default())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		listen := cfg.ServerAddr
		if *addr != "" {
			listen = *addr
		}
		if listen == "" {
			listen = ":8080"
		}
		log.Printf("Starting web server on %s", listen)
		if err := http.ListenAndServe(listen, srv.Routes()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if *prompt == "" {
		fmt.Fprintln(os.Stderr, "--prompt is required unless --serve is set")
		os.Exit(1)
	}

	// One-shot CLI mode: run a single generation against the mock ledger
	// and print the extracted insight.
	spec := generator.Spec{Prompt: *prompt, Context: ledger.PromptContext()}
	sess := generator.NewSession("cli", spec, agent)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	log.Printf("[cli] generating insight prompt=%q", *prompt)
	insight, err := sess.Propose(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("Name: %s\n\n%s\n\n%s\n", insight.Name, insight.Explanation, insight.Code)
}

func buildLLM(cfg dashboard.Config) (generator.LLMClient, error) {
	if cfg.LLM == nil || cfg.LLM.Provider == "" {
		return nil, fmt.Errorf("llm config missing; please set llm.provider/model/api_key in config")
	}
	switch cfg.LLM.Provider {
	case "openai":
		return generator.NewOpenAILLMFromConfig(&generator.LLMSettings{
			Provider: cfg.LLM.Provider,
			Model:    cfg.LLM.Model,
			APIKey:   cfg.LLM.APIKey,
			BaseURL:  cfg.LLM.BaseURL,
		})
	case "deepseek":
		// DeepSeek exposes an OpenAI-compatible API; base_url is required.
		if cfg.LLM.BaseURL == "" {
			return nil, fmt.Errorf("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
		return generator.NewOpenAILLMFromConfig(&generator.LLMSettings{
			Provider: cfg.LLM.Provider,
			Model:    cfg.LLM.Model,
			APIKey:   cfg.LLM.APIKey,
			BaseURL:  cfg.LLM.BaseURL,
		})
	case "mock":
		return generator.MockLLM{}, nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.LLM.Provider)
	}
}
