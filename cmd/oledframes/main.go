package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ivlev/oledframes/internal/budget"
	"github.com/ivlev/oledframes/internal/config"
	"github.com/ivlev/oledframes/internal/engine"
	"github.com/ivlev/oledframes/internal/export"
	"github.com/ivlev/oledframes/internal/renderer"
	"github.com/ivlev/oledframes/internal/system"
)

var version = "dev"

const animationsDir = "animations"

func main() {
	opts, initPath, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	if initPath != "" {
		if err := config.Write(config.Example(), initPath); err != nil {
			log.Fatalf("[-] Ошибка записи примера: %v", err)
		}
		fmt.Printf("[+++] Пример сохранен: %s\n", initPath)
		return
	}

	if err := run(opts); err != nil {
		log.Fatalf("[-] Ошибка: %v", err)
	}
}

// parseFlags reads run settings from args; the second result is the -init path
func parseFlags(args []string) (config.Options, string, error) {
	fs := flag.NewFlagSet("oledframes", flag.ContinueOnError)

	configPtr := fs.String("config", "", "Путь к YAML с анимациями (по умолчанию: самый свежий файл в animations/)")
	outputPtr := fs.String("output", "output", "Папка для кадров, превью и заголовка")
	previewPtr := fs.Bool("preview", false, "Сохранять GIF-превью для каждой анимации")
	headerPtr := fs.Bool("header", false, "Сохранять C-заголовок animations.h для прошивки")
	workersPtr := fs.Int("workers", 0, "Потоки (0 - по числу ядер)")
	fontPtr := fs.String("font", renderer.DefaultFontPath, "Путь к TTF-шрифту для текста")
	verbosePtr := fs.Bool("verbose", false, "Подробный вывод по каждой анимации")
	statsPtr := fs.Bool("stats", true, "Печатать статистику памяти")
	initPtr := fs.String("init", "", "Записать пример YAML по указанному пути и выйти")

	if err := fs.Parse(args); err != nil {
		return config.Options{}, "", err
	}

	opts := config.Options{
		ConfigPath:   *configPtr,
		OutputDir:    *outputPtr,
		Preview:      *previewPtr,
		Header:       *headerPtr,
		Workers:      *workersPtr,
		FontPath:     *fontPtr,
		Verbose:      *verbosePtr,
		ShowStats:    *statsPtr,
		BuildVersion: version,
	}
	return opts, *initPtr, nil
}

func run(opts config.Options) error {
	fmt.Printf("[*] oledframes %s\n", opts.BuildVersion)

	if opts.ConfigPath == "" {
		if err := os.MkdirAll(animationsDir, 0755); err != nil {
			return err
		}
		latest, err := system.FindLatestConfig(animationsDir)
		if err != nil {
			return fmt.Errorf("%w. Положите YAML в %s/ или создайте пример через -init", err, animationsDir)
		}
		opts.ConfigPath = latest
		fmt.Printf("[*] Выбран файл: %s\n", opts.ConfigPath)
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	info := system.Probe()
	workers := info.Workers(opts.Workers)
	fmt.Printf("[*] Холст %dx%d @ %d FPS, анимаций: %d, потоков: %d\n",
		cfg.Canvas.Width, cfg.Canvas.Height, cfg.FPS, len(cfg.Animations), workers)

	planned := 0
	for _, a := range cfg.Animations {
		planned += a.TotalFrames(cfg.FPS)
	}
	if err := info.Headroom(planned, cfg.Canvas.Width, cfg.Canvas.Height); err != nil {
		return err
	}

	gen := engine.NewGenerator(renderer.NewFontSource(opts.FontPath), workers)
	gen.Verbose = opts.Verbose

	start := time.Now()
	res, err := gen.Generate(cfg)
	if err != nil {
		return fmt.Errorf("генерация кадров: %w", err)
	}
	fmt.Printf("[>] Сгенерировано кадров: %d за %v\n", res.TotalFrames(), time.Since(start).Round(time.Millisecond))

	n, err := export.WriteFrames(opts.OutputDir, res)
	if err != nil {
		return fmt.Errorf("запись кадров: %w", err)
	}
	fmt.Printf("[>] Сохранено PNG: %d в %s\n", n, opts.OutputDir)

	if opts.Preview {
		previews, err := export.WritePreviews(opts.OutputDir, res)
		if err != nil {
			return fmt.Errorf("запись превью: %w", err)
		}
		for _, p := range previews {
			fmt.Printf("[>] Превью: %s\n", p)
		}
	}

	if opts.Header {
		path, err := export.WriteHeaderFile(opts.OutputDir, res)
		if err != nil {
			return fmt.Errorf("запись заголовка: %w", err)
		}
		fmt.Printf("[>] Заголовок: %s\n", path)
	}

	report := budget.Audit(res.TotalFrames(), cfg.Canvas.Width, cfg.Canvas.Height, cfg.MemoryLimit)
	if opts.ShowStats {
		printStats(report)
	}

	if !report.WithinBudget {
		fmt.Printf("[!] ВНИМАНИЕ: превышен лимит памяти (%.1f KB из %d KB)\n", report.UsedKB(), cfg.MemoryLimit)
		fmt.Println("    Попробуйте уменьшить FPS, длительность анимаций или разрешение холста")
	} else {
		fmt.Printf("[+++] Успех! Использовано %.1f%% лимита памяти\n", report.Percent())
	}
	return nil
}

func printStats(r budget.Report) {
	fmt.Println("[*] Статистика:")
	fmt.Printf("    Всего кадров:   %d\n", r.Frames)
	fmt.Printf("    Байт на кадр:   %d\n", r.BytesPerFrame)
	fmt.Printf("    Всего:          %d байт (%.2f KB)\n", r.UsedBytes, r.UsedKB())
	fmt.Printf("    Лимит:          %d байт\n", r.LimitBytes)
}
