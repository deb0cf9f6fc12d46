package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"taskBoard/internal/client"
	"taskBoard/internal/config"
	"taskBoard/internal/models/task"
	"taskBoard/internal/query"

	"github.com/google/uuid"
)

// консольный потребитель API: список, создание, завершение, удаление
// и режим watch с локальным кэшем и опросом сервера

func main() {
	addr := flag.String("addr", "http://localhost:3000", "адрес сервера")
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	api := client.New(*addr)
	ctx := context.Background()

	var err error
	switch flag.Arg(0) {
	case "list":
		err = list(ctx, api, flag.Args()[1:])
	case "create":
		err = create(ctx, api, flag.Args()[1:])
	case "done":
		err = done(ctx, api, flag.Args()[1:])
	case "delete":
		err = remove(ctx, api, flag.Args()[1:])
	case "watch":
		err = watch(ctx, api)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "ошибка:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "использование: taskcli [-addr URL] list|create|done|delete|watch [флаги]")
}

func list(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	search := fs.String("query", "", "подстрока поиска")
	filter := fs.String("filter", "", "all|active|completed")
	sortKey := fs.String("sort", "", "name|date|completion|type|id")
	fs.Parse(args)

	tasks, err := api.List(ctx, query.Params{
		Search: *search,
		Filter: query.Filter(*filter),
		Sort:   query.Sort(*sortKey),
	})
	if err != nil {
		return err
	}

	printTasks(tasks)
	return nil
}

func create(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	taskType := fs.String("type", "basic", "basic|timed|checklist")
	title := fs.String("title", "", "заголовок")
	hours := fs.Int("hours", 0, "часы до дедлайна (timed)")
	minutes := fs.Int("minutes", 0, "минуты до дедлайна (timed)")
	fs.Parse(args)

	created, err := api.Create(ctx, client.CreateRequest{
		Type: *taskType,
		Props: client.CreateProps{
			Title:   *title,
			Hours:   *hours,
			Minutes: *minutes,
		},
	})
	if err != nil {
		return err
	}

	printTasks([]*task.Task{created})
	return nil
}

func done(ctx context.Context, api *client.Client, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	updated, err := api.SetCompletion(ctx, id, true)
	if err != nil {
		return err
	}

	printTasks([]*task.Task{updated})
	return nil
}

func remove(ctx context.Context, api *client.Client, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	if err := api.Delete(ctx, id); err != nil {
		return err
	}

	fmt.Println("задача удалена:", id)
	return nil
}

// watch держит локальный кэш коллекции и печатает активные задачи,
// пока процесс не остановят
func watch(ctx context.Context, api *client.Client) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cache := client.NewCache(api)
	if err := cache.Refresh(ctx); err != nil {
		return err
	}

	go cache.Start(ctx, cfg.ClientPollInterval())

	ticker := time.NewTicker(cfg.ClientPollInterval())
	defer ticker.Stop()

	for {
		fmt.Println("синхронизировано:", cache.SyncedAt().Format("2006/01/02 15:04:05"))
		printTasks(cache.View(query.Params{Filter: query.FilterActive}))

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func parseID(args []string) (uuid.UUID, error) {
	if len(args) < 1 {
		return uuid.Nil, fmt.Errorf("нужен id задачи")
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return uuid.Nil, fmt.Errorf("неверный id: %w", err)
	}
	return id, nil
}

func printTasks(tasks []*task.Task) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tТИП\t \tЗАГОЛОВОК\tДЕДЛАЙН")
	for _, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		due := "-"
		if t.DueDate != nil {
			due = t.DueDate.Format("2006/01/02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t[%s]\t%s\t%s\n", t.ID, t.Type, mark, t.Title, due)
	}
	w.Flush()
}
