package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/aymanashrafmounir/SaintMark-BookingSystem/config"
	"github.com/aymanashrafmounir/SaintMark-BookingSystem/database"
	slotsRepo "github.com/aymanashrafmounir/SaintMark-BookingSystem/database/repository/slots"
	"github.com/aymanashrafmounir/SaintMark-BookingSystem/models"
	"github.com/aymanashrafmounir/SaintMark-BookingSystem/render"
	"github.com/aymanashrafmounir/SaintMark-BookingSystem/services/report"
	"github.com/aymanashrafmounir/SaintMark-BookingSystem/utils"
)

// User-supplied dates arrive as DD.MM.YYYY.
const dateLayout = "02.01.2006"

func main() {
	startFlag := flag.String("start", "", "start date (DD.MM.YYYY); prompted for when omitted")
	endFlag := flag.String("end", "", "end date (DD.MM.YYYY); prompted for when omitted")
	variantFlag := flag.String("variant", "full", "report variant: full or music")
	flag.Parse()

	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	variant := report.Variant(*variantFlag)
	if variant != report.VariantFull && variant != report.VariantMusic {
		fmt.Fprintf(os.Stderr, "unknown report variant %q (expected full or music)\n", *variantFlag)
		os.Exit(1)
	}

	// User input and credentials are validated before anything touches the
	// database.
	start, end, err := resolveDateRange(*startFlag, *endFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := config.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx := context.Background()
	rep := &models.Report{}

	client, err := database.Connect(ctx)
	if err != nil {
		// An unreachable database degrades to an empty report, not a crash.
		logger.Warn("database connection failed, continuing with zero records", zap.Error(err))
	} else {
		defer database.Disconnect(client)
		pipeline := report.NewPipeline(slotsRepo.NewMongoSlotRepo(client), logger)
		rep = pipeline.Run(ctx, start, end, variant)
	}

	sections := report.Sections(rep)
	if len(sections) == 0 {
		fmt.Println(utils.DisplayRTL("لا توجد حجوزات مؤكدة في الفترة المحددة."))
		return
	}

	title := report.TitleFull
	if variant == report.VariantMusic {
		title = report.TitleMusic
	}
	if err := render.NewConsoleRenderer().Render(title, sections); err != nil {
		logger.Error("failed to render report", zap.Error(err))
		os.Exit(1)
	}
}

// resolveDateRange takes the dates from flags when given, otherwise prompts
// for them interactively, and validates format and ordering.
func resolveDateRange(startArg, endArg string) (time.Time, time.Time, error) {
	reader := bufio.NewReader(os.Stdin)

	startStr, err := promptIfEmpty(reader, startArg, "ادخل تاريخ البداية (DD.MM.YYYY): ")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endStr, err := promptIfEmpty(reader, endArg, "ادخل تاريخ النهاية (DD.MM.YYYY): ")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("تنسيق التاريخ غير صحيح. برجاء إدخال التاريخ بصيغة DD.MM.YYYY")
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("تنسيق التاريخ غير صحيح. برجاء إدخال التاريخ بصيغة DD.MM.YYYY")
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("تاريخ البداية يجب أن يكون قبل أو يساوي تاريخ النهاية.")
	}
	return start, end, nil
}

func promptIfEmpty(reader *bufio.Reader, value, prompt string) (string, error) {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value), nil
	}
	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
