// controllers/service.go
package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"sync"

	"weddingplanner-backend/config"
	"weddingplanner-backend/models"
	"weddingplanner-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// subtypeWriter inserts the per-type detail row inside the same
// transaction as the parent service.
type subtypeWriter func(tx *gorm.DB, service *models.WeddingService, capacity *int) error

// Closed dispatch table: every catalog type has exactly one writer. A
// type missing here is a misconfiguration, not a bad request.
var subtypeWriters = map[string]subtypeWriter{
	models.ServiceTypeDJ: func(tx *gorm.DB, s *models.WeddingService, _ *int) error {
		return tx.Create(&models.DJBand{ServiceID: s.ID}).Error
	},
	models.ServiceTypeChef: func(tx *gorm.DB, s *models.WeddingService, _ *int) error {
		return tx.Create(&models.Chef{ServiceID: s.ID}).Error
	},
	models.ServiceTypeCakeBaker: func(tx *gorm.DB, s *models.WeddingService, _ *int) error {
		return tx.Create(&models.CakeBaker{ServiceID: s.ID}).Error
	},
	models.ServiceTypeFlorist: func(tx *gorm.DB, s *models.WeddingService, _ *int) error {
		return tx.Create(&models.Florist{ServiceID: s.ID}).Error
	},
	models.ServiceTypeWaiter: func(tx *gorm.DB, s *models.WeddingService, _ *int) error {
		return tx.Create(&models.Waiter{ServiceID: s.ID}).Error
	},
	models.ServiceTypeVenue: func(tx *gorm.DB, s *models.WeddingService, capacity *int) error {
		return tx.Create(&models.Venue{
			ServiceID: s.ID,
			Address:   s.Address,
			Capacity:  capacity,
		}).Error
	},
}

// ServiceResponse is the list/detail wire shape: the service row plus
// aggregated photo URLs and, for lists, the next open date.
type ServiceResponse struct {
	ID                uint     `json:"id"`
	ServiceType       string   `json:"service_type"`
	Name              string   `json:"name"`
	Address           *string  `json:"address"`
	Price             *float64 `json:"price"`
	Description       *string  `json:"description"`
	PhoneNumber       *string  `json:"phone_number"`
	Email             string   `json:"email"`
	Photos            []string `json:"photos"`
	NextAvailableDate *string  `json:"next_available_date"`
}

// CreateService accepts the multipart vendor-listing form and persists
// the service, its photos, its subtype row and its availability dates
// as one unit. Partial listings never survive a failure.
func CreateService(c *gin.Context) {
	serviceType := c.PostForm("service_type")
	name := c.PostForm("name")
	email := c.PostForm("email")
	if serviceType == "" || name == "" || email == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing required fields.")
		return
	}

	phone := optionalString(c.PostForm("phone_number"))
	if phone != nil && !utils.ValidatePhone(*phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number.")
		return
	}

	service := models.WeddingService{
		ServiceType: serviceType,
		Name:        name,
		Address:     optionalString(c.PostForm("address")),
		Price:       parsePrice(c.PostForm("price")),
		Description: optionalString(c.PostForm("description")),
		PhoneNumber: phone,
		Email:       email,
	}

	var capacity *int
	if raw := c.PostForm("capacity"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			capacity = &n
		}
	}

	dates := utils.ParseDateList(c.PostFormArray("dates"))

	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files = form.File["photos"]
	}
	if len(files) > maxUploadFiles {
		utils.RespondWithError(c, http.StatusBadRequest, "Too many photos.")
		return
	}

	// Blob writes happen before and outside the transaction; on a later
	// rollback the files are orphaned, which the store tolerates.
	photoURLs, err := saveServicePhotos(c, files)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add service")
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&service).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add service")
		return
	}

	for _, url := range photoURLs {
		if err := tx.Create(&models.ServicePhoto{ServiceID: service.ID, FileURL: url}).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add service")
			return
		}
	}

	writer, ok := subtypeWriters[serviceType]
	if !ok {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add service")
		return
	}
	if err := writer(tx, &service, capacity); err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add service")
		return
	}

	for _, date := range dates {
		availability := models.ServiceAvailability{ServiceID: service.ID, AvailableDate: date}
		if err := tx.Create(&availability).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add service")
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add service")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "id": service.ID})
}

// GetServices lists the catalog, optionally filtered by service_type.
func GetServices(c *gin.Context) {
	query := config.DB.
		Preload("Photos", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Availability").
		Order("service_type ASC, name ASC")

	if serviceType := c.Query("service_type"); serviceType != "" {
		query = query.Where("service_type = ?", serviceType)
	}

	var services []models.WeddingService
	if err := query.Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch services")
		return
	}

	responses := make([]ServiceResponse, 0, len(services))
	for i := range services {
		responses = append(responses, toServiceResponse(&services[i]))
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "services": responses})
}

// GetServiceDetails returns one service with its full availability
// calendar, booked dates included.
func GetServiceDetails(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service id")
		return
	}

	var service models.WeddingService
	err = config.DB.
		Preload("Photos", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&service, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch service")
		}
		return
	}

	var availability []models.ServiceAvailability
	if err := config.DB.
		Where("service_id = ?", service.ID).
		Order("available_date ASC").
		Find(&availability).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch service")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":           true,
		"service":      toServiceResponse(&service),
		"availability": availability,
	})
}

const maxUploadFiles = 10

// saveServicePhotos writes the uploaded files to blob storage
// concurrently. The returned URLs keep upload order regardless of
// which write finishes first.
func saveServicePhotos(c *gin.Context, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}

	dir, err := utils.UploadDir("services")
	if err != nil {
		return nil, err
	}

	urls := make([]string, len(files))
	errs := make([]error, len(files))
	var wg sync.WaitGroup
	for i, file := range files {
		wg.Add(1)
		go func(i int, file *multipart.FileHeader) {
			defer wg.Done()
			filename := utils.UniqueFilename(file.Filename)
			errs[i] = c.SaveUploadedFile(file, filepath.Join(dir, filename))
			urls[i] = "/uploads/services/" + filename
		}(i, file)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return urls, nil
}

func toServiceResponse(service *models.WeddingService) ServiceResponse {
	photos := make([]string, 0, len(service.Photos))
	for _, p := range service.Photos {
		photos = append(photos, p.FileURL)
	}

	var next *string
	for i := range service.Availability {
		a := &service.Availability[i]
		if a.IsBooked {
			continue
		}
		if next == nil || a.AvailableDate < *next {
			next = &a.AvailableDate
		}
	}

	return ServiceResponse{
		ID:                service.ID,
		ServiceType:       service.ServiceType,
		Name:              service.Name,
		Address:           service.Address,
		Price:             service.Price,
		Description:       service.Description,
		PhoneNumber:       service.PhoneNumber,
		Email:             service.Email,
		Photos:            photos,
		NextAvailableDate: next,
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func parsePrice(raw string) *float64 {
	if raw == "" {
		return nil
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &price
}
