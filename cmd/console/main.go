package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"fitzone/internal/class"
	"fitzone/internal/logger"
	"fitzone/internal/report"
	"fitzone/internal/seed"
	"fitzone/internal/subscription"
	"fitzone/internal/trainer"
)

// The console front-end is glue only: it reads raw text, converts it to
// typed values with retry on malformed input, and renders the entity
// summaries. All decisions live in the internal services.
type console struct {
	in            *bufio.Reader
	classes       class.Service
	trainers      trainer.Service
	subscriptions subscription.Service
	reports       report.Service
}

func main() {
	logger.Init()

	classRepo := class.NewRepository()
	trainerRepo := trainer.NewRepository()
	subscriptionRepo := subscription.NewRepository()

	app := &console{
		in:            bufio.NewReader(os.Stdin),
		classes:       class.NewService(classRepo),
		trainers:      trainer.NewService(trainerRepo, classRepo),
		subscriptions: subscription.NewService(subscriptionRepo, classRepo, subscription.NewDefaultPricing()),
		reports:       report.NewService(classRepo, trainerRepo),
	}

	ctx := context.Background()
	if err := seed.SampleData(ctx, app.classes, app.trainers); err != nil {
		logger.Fatalf("Failed to seed sample data: %v", err)
	}

	app.run(ctx)
}

func (a *console) run(ctx context.Context) {
	for {
		a.printMenu()
		choice := a.input("Choose an option: ")
		switch choice {
		case "1":
			a.addTrainer(ctx)
		case "2":
			a.addClass(ctx)
		case "3":
			a.createSubscription(ctx)
		case "4":
			a.listTrainers(ctx)
		case "5":
			a.listClasses(ctx)
		case "6":
			a.listSubscriptions(ctx)
		case "7":
			a.printReport(ctx)
		case "0":
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Println("Invalid option.")
		}
		fmt.Println()
	}
}

func (a *console) printMenu() {
	fmt.Println("=== FitZone Manager ===")
	fmt.Println("1) Add trainer")
	fmt.Println("2) Add class type")
	fmt.Println("3) Create client subscription")
	fmt.Println("4) List trainers")
	fmt.Println("5) List class types")
	fmt.Println("6) List subscriptions")
	fmt.Println("7) Summary report (classes + trainers)")
	fmt.Println("0) Exit")
}

func (a *console) addTrainer(ctx context.Context) {
	fmt.Println("--- Add trainer ---")
	name := a.input("Name: ")
	email := a.input("Email: ")
	fmt.Println("Trainer type: 1) Permanent  2) External")
	t := a.input("Choose type (1/2): ")
	spec := a.chooseClassOptional(ctx)

	req := trainer.CreateTrainerRequest{
		Name:           name,
		Email:          email,
		Specialization: spec,
	}
	if t == "2" {
		req.Employment = "external"
		req.Company = a.input("Company: ")
		req.HourlyRate = a.readFloat("Hourly rate (e.g. 50): ")
	} else {
		req.Employment = "permanent"
		req.MonthlySalary = a.readFloat("Monthly salary (e.g. 2500): ")
	}

	created, err := a.trainers.CreateTrainer(ctx, req)
	if err != nil {
		fmt.Println("Could not add trainer:", err)
		return
	}
	fmt.Println("Trainer added:", created.Summary())
}

func (a *console) addClass(ctx context.Context) {
	fmt.Println("--- Add class type ---")
	name := a.input("Class name (e.g. Spinning): ")
	fmt.Println("Intensity: 1) light  2) medium  3) hard")
	i := a.input("Choose intensity (1/2/3): ")
	intensity := "medium"
	if i == "1" {
		intensity = "light"
	} else if i == "3" {
		intensity = "hard"
	}
	base := a.readFloat("Monthly base price (e.g. 40.0): ")

	created, err := a.classes.CreateClass(ctx, class.CreateClassRequest{
		Name:      name,
		Intensity: intensity,
		BasePrice: base,
	})
	if err != nil {
		fmt.Println("Could not add class:", err)
		return
	}
	fmt.Println("Class type added:", created.Summary())
}

func (a *console) createSubscription(ctx context.Context) {
	fmt.Println("--- Create subscription ---")
	subscriber := a.input("Client name: ")
	chosen, ok := a.chooseClassRequired(ctx)
	if !ok {
		return
	}
	months := a.readInt("Number of months (e.g. 1, 6, 12): ")
	fmt.Println("Subscription type: 1) Standard  2) Premium")
	t := a.input("Choose type (1/2): ")

	created, err := a.subscriptions.CreateSubscription(ctx, subscription.CreateSubscriptionRequest{
		SubscriberName: subscriber,
		ClassName:      chosen,
		Months:         months,
		IsPremium:      t == "2",
	})
	if err != nil {
		fmt.Println("Could not create subscription:", err)
		return
	}
	fmt.Println("Subscription created:", created.Brief())
}

func (a *console) listTrainers(ctx context.Context) {
	fmt.Println("--- Trainers ---")
	trainers, err := a.trainers.GetAllTrainers(ctx)
	if err != nil {
		fmt.Println("Could not list trainers:", err)
		return
	}
	if len(trainers) == 0 {
		fmt.Println("No trainers registered.")
		return
	}
	for i := range trainers {
		fmt.Println(trainers[i].Summary())
	}
}

func (a *console) listClasses(ctx context.Context) {
	fmt.Println("--- Class types ---")
	classes, err := a.classes.GetAllClasses(ctx)
	if err != nil {
		fmt.Println("Could not list classes:", err)
		return
	}
	if len(classes) == 0 {
		fmt.Println("No class types defined.")
		return
	}
	for i := range classes {
		fmt.Println(classes[i].Summary())
	}
}

func (a *console) listSubscriptions(ctx context.Context) {
	fmt.Println("--- Subscriptions ---")
	subs, err := a.subscriptions.GetAllSubscriptions(ctx)
	if err != nil {
		fmt.Println("Could not list subscriptions:", err)
		return
	}
	if len(subs) == 0 {
		fmt.Println("No subscriptions created.")
		return
	}
	for i := range subs {
		fmt.Println(subs[i].Brief())
	}
}

func (a *console) printReport(ctx context.Context) {
	fmt.Println("=== Summary report: class types and trainers ===")
	groups, err := a.reports.BuildReport(ctx)
	if err != nil {
		fmt.Println("Could not build report:", err)
		return
	}
	for _, g := range groups {
		fmt.Println("Class:", g.ClassName)
		if len(g.Trainers) == 0 {
			fmt.Println("  (no trainers)")
			continue
		}
		for i := range g.Trainers {
			fmt.Printf("  - %s (%s)\n", g.Trainers[i].Name, g.Trainers[i].TypeLabel())
		}
	}
}

// chooseClassOptional lets the user pick a catalog class or none.
func (a *console) chooseClassOptional(ctx context.Context) string {
	classes, err := a.classes.GetAllClasses(ctx)
	if err != nil || len(classes) == 0 {
		fmt.Println("No class types exist yet.")
		return ""
	}
	fmt.Println("Pick a class (or leave empty for none):")
	for i := range classes {
		fmt.Printf("%d) %s\n", i+1, classes[i].Summary())
	}
	choice := a.input("Number (or Enter): ")
	if choice == "" {
		return ""
	}
	if idx, err := strconv.Atoi(choice); err == nil && idx >= 1 && idx <= len(classes) {
		return classes[idx-1].Name
	}
	fmt.Println("Invalid choice; no class assigned.")
	return ""
}

// chooseClassRequired keeps prompting until a valid class is picked.
// Returns false when the catalog is empty.
func (a *console) chooseClassRequired(ctx context.Context) (string, bool) {
	classes, err := a.classes.GetAllClasses(ctx)
	if err != nil || len(classes) == 0 {
		fmt.Println("No class types exist. Add one first.")
		return "", false
	}
	fmt.Println("Pick a class:")
	for i := range classes {
		fmt.Printf("%d) %s\n", i+1, classes[i].Summary())
	}
	for {
		choice := a.input("Number: ")
		if idx, err := strconv.Atoi(choice); err == nil && idx >= 1 && idx <= len(classes) {
			return classes[idx-1].Name, true
		}
		fmt.Println("Invalid choice. Try again.")
	}
}

func (a *console) input(prompt string) string {
	fmt.Print(prompt)
	line, err := a.in.ReadString('\n')
	if err != nil {
		fmt.Println()
		os.Exit(0)
	}
	return strings.TrimSpace(line)
}

func (a *console) readFloat(prompt string) float64 {
	for {
		v := a.input(prompt)
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		fmt.Println("Invalid number. Try again.")
	}
}

func (a *console) readInt(prompt string) int {
	for {
		v := a.input(prompt)
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		fmt.Println("Invalid number. Try again.")
	}
}
