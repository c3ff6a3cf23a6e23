package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pradera/pradera/application/port/inbound"
	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/application/usecase"
	"github.com/pradera/pradera/domain/entity"
	"github.com/pradera/pradera/infrastructure/adapter/postgres"
	"github.com/pradera/pradera/infrastructure/service/jwt"
	"github.com/pradera/pradera/infrastructure/service/logger"
	"github.com/pradera/pradera/infrastructure/service/password"
)

// SeedFile is the fixture format read by `praderactl seed`.
type SeedFile struct {
	Users     []SeedUser     `yaml:"users"`
	Projects  []SeedProject  `yaml:"projects"`
	Workers   []SeedWorker   `yaml:"workers"`
	Crews     []SeedCrew     `yaml:"crews"`
	Materials []SeedMaterial `yaml:"materials"`
}

type SeedUser struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type SeedProject struct {
	Name       string   `yaml:"name"`
	WorkType   string   `yaml:"tipo_obra"`
	Complexity string   `yaml:"complejidad"`
	WorkZone   string   `yaml:"zona_trabajo"`
	StartDate  *string  `yaml:"fecha_inicio"`
	EndDate    *string  `yaml:"fecha_termino"`
	Budget     *float64 `yaml:"presupuesto"`
}

type SeedWorker struct {
	Name       string  `yaml:"name"`
	RUT        *string `yaml:"rut"`
	Specialty  string  `yaml:"especialidad"`
	Experience *int    `yaml:"experiencia"`
}

// SeedCrew refers to its project and workers by name.
type SeedCrew struct {
	Name    string       `yaml:"name"`
	Project string       `yaml:"project"`
	Status  string       `yaml:"estado"`
	Members []SeedMember `yaml:"members"`
}

type SeedMember struct {
	Worker string `yaml:"worker"`
	Role   string `yaml:"role"`
}

type SeedMaterial struct {
	Name  string   `yaml:"name"`
	Stock *int     `yaml:"stock"`
	Unit  string   `yaml:"unidad"`
	Price *float64 `yaml:"precio"`
}

func loadSeed(r io.Reader) (*SeedFile, error) {
	var seed SeedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &seed, nil
}

// seeder writes fixtures through the use cases so they get the same
// validation as API traffic.
type seeder struct {
	auth      inbound.AuthUseCase
	projects  inbound.ProjectUseCase
	workers   inbound.WorkerUseCase
	crews     inbound.CrewUseCase
	materials inbound.MaterialUseCase
	out       io.Writer
}

var seedActor = outbound.TokenClaims{UserID: "praderactl", Role: entity.RoleAdmin}

func (s *seeder) apply(ctx context.Context, seed *SeedFile) error {
	for _, u := range seed.Users {
		role := u.Role
		if role == "" {
			role = entity.RoleWorker
		}
		if _, err := s.auth.CreateUser(ctx, inbound.RegisterRequest{
			Name: u.Name, Email: u.Email, Password: u.Password,
		}, role); err != nil {
			return fmt.Errorf("user %q: %w", u.Email, err)
		}
	}
	fmt.Fprintf(s.out, "users: %d\n", len(seed.Users))

	projectIDs := make(map[string]string, len(seed.Projects))
	for _, p := range seed.Projects {
		project, err := s.projects.Create(ctx, seedActor, inbound.ProjectInput{
			Name:       p.Name,
			WorkType:   p.WorkType,
			Complexity: p.Complexity,
			WorkZone:   p.WorkZone,
			StartDate:  p.StartDate,
			EndDate:    p.EndDate,
			Budget:     p.Budget,
		})
		if err != nil {
			return fmt.Errorf("project %q: %w", p.Name, err)
		}
		projectIDs[p.Name] = project.ID
	}
	fmt.Fprintf(s.out, "projects: %d\n", len(seed.Projects))

	workerIDs := make(map[string]string, len(seed.Workers))
	for _, w := range seed.Workers {
		worker, err := s.workers.Create(ctx, seedActor, inbound.WorkerInput{
			Name:       w.Name,
			RUT:        w.RUT,
			Specialty:  w.Specialty,
			Experience: w.Experience,
		})
		if err != nil {
			return fmt.Errorf("worker %q: %w", w.Name, err)
		}
		workerIDs[w.Name] = worker.ID
	}
	fmt.Fprintf(s.out, "workers: %d\n", len(seed.Workers))

	for _, c := range seed.Crews {
		in := inbound.CrewInput{Name: c.Name, Status: c.Status}
		if c.Project != "" {
			id, ok := projectIDs[c.Project]
			if !ok {
				return fmt.Errorf("crew %q: unknown project %q", c.Name, c.Project)
			}
			in.ProjectID = &id
		}
		crew, err := s.crews.Create(ctx, seedActor, in)
		if err != nil {
			return fmt.Errorf("crew %q: %w", c.Name, err)
		}
		for _, member := range c.Members {
			workerID, ok := workerIDs[member.Worker]
			if !ok {
				return fmt.Errorf("crew %q: unknown worker %q", c.Name, member.Worker)
			}
			if _, err := s.crews.AddWorker(ctx, seedActor, crew.ID, inbound.CrewMemberInput{
				WorkerID: workerID,
				Role:     member.Role,
			}); err != nil {
				return fmt.Errorf("crew %q: add %q: %w", c.Name, member.Worker, err)
			}
		}
	}
	fmt.Fprintf(s.out, "crews: %d\n", len(seed.Crews))

	for _, m := range seed.Materials {
		if _, err := s.materials.Create(ctx, seedActor, inbound.MaterialInput{
			Name: m.Name, Stock: m.Stock, Unit: m.Unit, Price: m.Price,
		}); err != nil {
			return fmt.Errorf("material %q: %w", m.Name, err)
		}
	}
	fmt.Fprintf(s.out, "materials: %d\n", len(seed.Materials))
	return nil
}

var seedFile string

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "seed.yaml", "YAML fixture file")
	rootCmd.AddCommand(seedCmd)
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load fixtures from a YAML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(seedFile)
		if err != nil {
			return err
		}
		defer f.Close()

		seed, err := loadSeed(f)
		if err != nil {
			return err
		}

		cfg, db, err := openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		if err := postgres.MigrateUp(db.DB); err != nil {
			return err
		}

		tokens, err := jwt.NewJWTService(cfg)
		if err != nil {
			return err
		}
		log := logger.NewNopLogger()
		opts := usecase.Options{BannedWords: cfg.BannedWords}

		s := &seeder{
			auth: usecase.NewAuthUseCase(
				postgres.NewUserRepositoryAdapter(db.DB),
				tokens,
				password.NewBcryptPasswordService(cfg.BcryptCost),
				log,
				cfg.JWTExpiration,
				opts,
			),
			projects:  usecase.NewProjectUseCase(postgres.NewProjectRepository(db.DB), log, opts),
			workers:   usecase.NewWorkerUseCase(postgres.NewWorkerRepository(db.DB), log, opts),
			crews:     usecase.NewCrewUseCase(postgres.NewCrewRepository(db.DB), log, opts),
			materials: usecase.NewMaterialUseCase(postgres.NewMaterialRepository(db.DB), log, opts),
			out:       cmd.OutOrStdout(),
		}
		return s.apply(cmd.Context(), seed)
	},
}
