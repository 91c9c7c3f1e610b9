package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/spec-kit/staffing-directory/internal/config"
	"github.com/spec-kit/staffing-directory/internal/domain"
	"github.com/spec-kit/staffing-directory/internal/observability"
	"github.com/spec-kit/staffing-directory/internal/persistence"
	"github.com/spec-kit/staffing-directory/internal/repository"
)

// samplePeople covers every department with a mix of staffing statuses so the
// beach view has data out of the box.
var samplePeople = []domain.Person{
	{Name: "Alice Johnson", Role: "Senior Software Engineer", Department: "Engineering", StaffingStatus: domain.StaffingStatusStaffed},
	{Name: "Bob Chen", Role: "Frontend Developer", Department: "Engineering", StaffingStatus: domain.StaffingStatusBench},
	{Name: "Carol Martinez", Role: "DevOps Engineer", Department: "Engineering", StaffingStatus: domain.StaffingStatusAvailable},
	{Name: "David Kim", Role: "Full Stack Developer", Department: "Engineering", StaffingStatus: domain.StaffingStatusStaffed},
	{Name: "Eva Rodriguez", Role: "Backend Engineer", Department: "Engineering", StaffingStatus: domain.StaffingStatusBench},
	{Name: "Frank Wilson", Role: "Product Manager", Department: "Product", StaffingStatus: domain.StaffingStatusStaffed},
	{Name: "Grace Lee", Role: "UX Designer", Department: "Product", StaffingStatus: domain.StaffingStatusAvailable},
	{Name: "Henry Taylor", Role: "Product Analyst", Department: "Product", StaffingStatus: domain.StaffingStatusBench},
	{Name: "Iris Wang", Role: "Data Scientist", Department: "Data", StaffingStatus: domain.StaffingStatusStaffed},
	{Name: "Jack Brown", Role: "Data Engineer", Department: "Data", StaffingStatus: domain.StaffingStatusAvailable},
	{Name: "Karen Davis", Role: "Analytics Lead", Department: "Data", StaffingStatus: domain.StaffingStatusStaffed},
	{Name: "Liam Murphy", Role: "Visual Designer", Department: "Design", StaffingStatus: domain.StaffingStatusBench},
	{Name: "Maya Patel", Role: "Design Lead", Department: "Design", StaffingStatus: domain.StaffingStatusStaffed},
	{Name: "Noah Garcia", Role: "Interaction Designer", Department: "Design", StaffingStatus: domain.StaffingStatusAvailable},
	{Name: "Olivia Smith", Role: "Marketing Manager", Department: "Marketing", StaffingStatus: domain.StaffingStatusStaffed},
	{Name: "Paul Anderson", Role: "Content Strategist", Department: "Marketing", StaffingStatus: domain.StaffingStatusBench},
	{Name: "Quinn Foster", Role: "Growth Analyst", Department: "Marketing", StaffingStatus: domain.StaffingStatusAvailable},
	{Name: "Rachel Green", Role: "QA Engineer", Department: "Engineering", StaffingStatus: domain.StaffingStatusStaffed},
	{Name: "Sam Osei", Role: "Platform Engineer", Department: "Engineering", StaffingStatus: domain.StaffingStatusAvailable},
	{Name: "Tina Novak", Role: "Scrum Master", Department: "Product", StaffingStatus: domain.StaffingStatusStaffed},
}

func main() {
	reset := flag.Bool("reset", false, "delete existing people before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	pool := pg.PoolHandle()
	if pool == nil {
		logger.Fatal("POSTGRES_DSN is required for seeding")
	}

	if err := persistence.EnsureSchema(ctx, pool, logger); err != nil {
		logger.Fatal("failed to ensure schema", zap.Error(err))
	}

	if *reset {
		if _, err := pool.Exec(ctx, "DELETE FROM people"); err != nil {
			logger.Fatal("failed to clear people table", zap.Error(err))
		}
		logger.Info("cleared people table")
	}

	personRepo := repository.NewPersonRepository(pool)
	for i := range samplePeople {
		person := samplePeople[i]
		if err := personRepo.Create(ctx, &person); err != nil {
			logger.Fatal("failed to seed person", zap.String("name", person.Name), zap.Error(err))
		}
	}

	logger.Info("seeding complete", zap.Int("people", len(samplePeople)))
}
