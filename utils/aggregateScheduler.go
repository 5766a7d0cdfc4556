package utils

import (
	"log"

	"madrasa/database"
	courseModels "madrasa/models/course"
	courseService "madrasa/services/course"

	"github.com/robfig/cron/v3"
)

// InitializeAggregateScheduler sets up the nightly aggregate reconciliation.
// Stored material counts and module durations are recomputed on every
// structural write, but a recompute that fails after the write committed
// leaves a stale aggregate; the nightly sweep heals those.
func InitializeAggregateScheduler() {
	log.Println("[AGGREGATE-SCHEDULER] Initializing aggregate scheduler...")

	c := cron.New()

	// Run daily at 3 AM
	c.AddFunc("0 3 * * *", func() {
		log.Println("[AGGREGATE-SCHEDULER] Running nightly aggregate reconciliation...")
		ReconcileAggregates()
	})

	c.Start()
	log.Println("[AGGREGATE-SCHEDULER] Aggregate scheduler started - runs daily at 3 AM")
}

// ReconcileAggregates recomputes every module duration and course material
// count from current mapper state
func ReconcileAggregates() {
	db := database.Database.Db

	var moduleIDs []uint
	if err := db.Model(&courseModels.Module{}).Where("is_deleted = ?", false).Pluck("id", &moduleIDs).Error; err != nil {
		log.Printf("[AGGREGATE-SCHEDULER] Error fetching modules: %v", err)
		return
	}
	for _, moduleID := range moduleIDs {
		if err := courseService.RecomputeModuleDuration(db, moduleID); err != nil {
			log.Printf("[AGGREGATE-SCHEDULER] Error recomputing module %d duration: %v", moduleID, err)
		}
	}

	var courseIDs []uint
	if err := db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Pluck("id", &courseIDs).Error; err != nil {
		log.Printf("[AGGREGATE-SCHEDULER] Error fetching courses: %v", err)
		return
	}
	for _, courseID := range courseIDs {
		if err := courseService.RecomputeCourseMaterialCount(db, courseID); err != nil {
			log.Printf("[AGGREGATE-SCHEDULER] Error recomputing course %d material count: %v", courseID, err)
		}
	}

	log.Printf("[AGGREGATE-SCHEDULER] Reconciled %d modules and %d courses", len(moduleIDs), len(courseIDs))
}
