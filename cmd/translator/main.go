package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Ildo7Cuema/Mini-pautas-sub009/internal/config"
	"github.com/Ildo7Cuema/Mini-pautas-sub009/internal/infrastructure/i18n"
)

func main() {
	success := flag.Bool("success", false, "traduz mensagens de sucesso em vez de erros")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Erro ao carregar a configuração: %v", err)
	}

	translator := i18n.NewTranslator(cfg.Locale)
	translate := translator.TranslateError
	if *success {
		translate = translator.TranslateSuccess
	}

	if args := flag.Args(); len(args) > 0 {
		for _, message := range args {
			fmt.Println(translate(message))
		}
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fmt.Println(translate(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("❌ Erro ao ler a entrada: %v", err)
	}
}
