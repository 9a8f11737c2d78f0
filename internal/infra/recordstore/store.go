package recordstore

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"gudlft-booking/internal/domain/club"
	"gudlft-booking/internal/domain/competition"
	"gudlft-booking/internal/infra"
	"gudlft-booking/internal/pkg/config"
)

// Store is the process-wide holder of the club and competition collections
// backed by two flat files. Callers must hold the lock (Lock/Unlock) while
// touching the collections; the unit of work does this for them.
type Store struct {
	mu sync.Mutex

	clubsPath        string
	competitionsPath string
	clubsCodec       Codec
	compsCodec       Codec
	layout           string
	loc              *time.Location
	logger           *slog.Logger

	clubs        []*club.Club
	competitions []*competition.Competition
}

// Snapshot is a value copy of both collections, used to undo a failed write.
type Snapshot struct {
	Clubs        []ClubRecord
	Competitions []CompetitionRecord
}

// Open loads both collections. Any failure here is fatal for the process.
func Open(cfg config.StoreConfig, logger *slog.Logger) (*Store, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{
		clubsPath:        cfg.ClubsPath,
		competitionsPath: cfg.CompetitionsPath,
		clubsCodec:       CodecFor(cfg.ClubsPath),
		compsCodec:       CodecFor(cfg.CompetitionsPath),
		layout:           cfg.DateLayout,
		loc:              loc,
		logger:           logger,
	}

	if err := s.Load(); err != nil {
		return nil, err
	}

	logger.Info("record store loaded",
		"clubs_path", s.clubsPath,
		"clubs", len(s.clubs),
		"competitions_path", s.competitionsPath,
		"competitions", len(s.competitions))

	return s, nil
}

func (s *Store) Lock()   { s.mu.Lock() }
func (s *Store) Unlock() { s.mu.Unlock() }

// Load replaces the in-memory collections with the file contents.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clubs, err := s.loadClubs()
	if err != nil {
		return err
	}
	comps, err := s.loadCompetitions()
	if err != nil {
		return err
	}

	s.clubs = clubs
	s.competitions = comps
	return nil
}

// Clubs returns the live collection. Lock must be held.
func (s *Store) Clubs() []*club.Club {
	return s.clubs
}

// Competitions returns the live collection. Lock must be held.
func (s *Store) Competitions() []*competition.Competition {
	return s.competitions
}

// Snapshot copies the current state. Lock must be held.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Clubs:        s.clubRecords(),
		Competitions: s.competitionRecords(),
	}
}

// Restore rebuilds both collections from a snapshot. Lock must be held.
func (s *Store) Restore(snap Snapshot) error {
	clubs, err := s.clubsFromRecords(snap.Clubs)
	if err != nil {
		return err
	}
	comps, err := s.competitionsFromRecords(snap.Competitions)
	if err != nil {
		return err
	}
	s.clubs = clubs
	s.competitions = comps
	return nil
}

// Persist writes both collections. Both documents are encoded and staged
// before anything is replaced; then competitions are renamed into place,
// then clubs. A failure between the two renames leaves places consumed on
// disk without the matching points charge. Lock must be held.
func (s *Store) Persist(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	compsData, err := s.compsCodec.Marshal(competitionsDocument{Competitions: s.competitionRecords()})
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDecodeFailure, "failed to encode competitions", err)
	}
	clubsData, err := s.clubsCodec.Marshal(clubsDocument{Clubs: s.clubRecords()})
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDecodeFailure, "failed to encode clubs", err)
	}

	compsFile, err := stage(s.competitionsPath, compsData)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindIOFailure, "failed to stage competitions", err)
	}
	clubsFile, err := stage(s.clubsPath, clubsData)
	if err != nil {
		compsFile.discard()
		return infra.WrapRepoErr(s.logger, infra.KindIOFailure, "failed to stage clubs", err)
	}

	if err := compsFile.commit(); err != nil {
		compsFile.discard()
		clubsFile.discard()
		return infra.WrapRepoErr(s.logger, infra.KindIOFailure, "failed to replace competitions", err)
	}
	if err := clubsFile.commit(); err != nil {
		clubsFile.discard()
		return infra.WrapRepoErr(s.logger, infra.KindIOFailure, "failed to replace clubs after competitions were written", err)
	}

	return nil
}

func (s *Store) loadClubs() ([]*club.Club, error) {
	data, err := os.ReadFile(s.clubsPath)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindIOFailure, "failed to read clubs", err)
	}

	var doc clubsDocument
	if err := s.clubsCodec.Unmarshal(data, &doc); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDecodeFailure, fmt.Sprintf("failed to decode %s clubs", s.clubsCodec.Name()), err)
	}
	return s.clubsFromRecords(doc.Clubs)
}

func (s *Store) loadCompetitions() ([]*competition.Competition, error) {
	data, err := os.ReadFile(s.competitionsPath)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindIOFailure, "failed to read competitions", err)
	}

	var doc competitionsDocument
	if err := s.compsCodec.Unmarshal(data, &doc); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDecodeFailure, fmt.Sprintf("failed to decode %s competitions", s.compsCodec.Name()), err)
	}
	return s.competitionsFromRecords(doc.Competitions)
}

func (s *Store) clubsFromRecords(records []ClubRecord) ([]*club.Club, error) {
	clubs := make([]*club.Club, 0, len(records))
	names := make(map[string]struct{}, len(records))
	emails := make(map[string]struct{}, len(records))

	for _, r := range records {
		c, err := clubFromRecord(r)
		if err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDecodeFailure, "invalid club record", err)
		}
		if _, dup := names[c.Name()]; dup {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "duplicate club name "+c.Name(), nil)
		}
		if _, dup := emails[c.Email()]; dup {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "duplicate club email "+c.Email(), nil)
		}
		names[c.Name()] = struct{}{}
		emails[c.Email()] = struct{}{}
		clubs = append(clubs, c)
	}
	return clubs, nil
}

func (s *Store) competitionsFromRecords(records []CompetitionRecord) ([]*competition.Competition, error) {
	comps := make([]*competition.Competition, 0, len(records))
	names := make(map[string]struct{}, len(records))

	for _, r := range records {
		c, err := competitionFromRecord(r, s.layout, s.loc)
		if err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDecodeFailure, "invalid competition record", err)
		}
		if _, dup := names[c.Name()]; dup {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "duplicate competition name "+c.Name(), nil)
		}
		names[c.Name()] = struct{}{}
		comps = append(comps, c)
	}
	return comps, nil
}

func (s *Store) clubRecords() []ClubRecord {
	records := make([]ClubRecord, len(s.clubs))
	for i, c := range s.clubs {
		records[i] = clubToRecord(c)
	}
	return records
}

func (s *Store) competitionRecords() []CompetitionRecord {
	records := make([]CompetitionRecord, len(s.competitions))
	for i, c := range s.competitions {
		records[i] = competitionToRecord(c, s.layout, s.loc)
	}
	return records
}
