package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/HifricAldar/cloud-computing/services"
	"github.com/gin-gonic/gin"
)

// ImageUploader stores an image and returns its public URL.
type ImageUploader interface {
	UploadBase64Image(ctx context.Context, base64Data, filenamePrefix string) (string, error)
}

type FoodController struct {
	foods    *services.FoodService
	analysis *services.AnalysisService
	news     *services.NewsService
	uploader ImageUploader
}

func NewFoodController(foods *services.FoodService, analysis *services.AnalysisService, news *services.NewsService, uploader ImageUploader) *FoodController {
	return &FoodController{foods: foods, analysis: analysis, news: news, uploader: uploader}
}

// GET /food?page=1&limit=10&name=milk&tags=2,7
func (ctl *FoodController) GetFoods(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	var tags []int64
	if raw := c.Query("tags"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "tags must be a comma-separated list of ids"})
				return
			}
			tags = append(tags, id)
		}
	}

	result, err := ctl.foods.GetFoods(c.Request.Context(), page, limit, c.Query("name"), tags)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (ctl *FoodController) GetFoodByID(c *gin.Context) {
	foodID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	food, err := ctl.foods.GetFoodByID(c.Request.Context(), currentUserID(c), uint(foodID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

func (ctl *FoodController) SaveFood(c *gin.Context) {
	var input services.SaveFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := ctl.foods.SaveFood(c.Request.Context(), input, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, food)
}

type UpdateFoodImageInput struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// UpdateFoodImage uploads the image to S3 and persists the URL.
func (ctl *FoodController) UpdateFoodImage(c *gin.Context) {
	foodID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	var input UpdateFoodImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, err := ctl.uploader.UploadBase64Image(c.Request.Context(), input.ImageBase64, fmt.Sprintf("food-%d", foodID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	food, err := ctl.foods.UpdateFoodImage(c.Request.Context(), uint(foodID), url)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

// Rate has no binding rule; the service validates the 1..5 range.
type RateFoodInput struct {
	Rate int `json:"rate"`
}

func (ctl *FoodController) RateFood(c *gin.Context) {
	foodID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	var input RateFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rate, err := ctl.foods.SetFoodRate(c.Request.Context(), currentUserID(c), uint(foodID), input.Rate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rate)
}

// Analyze forwards the uploaded image to the OCR service and, on
// success, credits the caller's points.
func (ctl *FoodController) Analyze(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer file.Close()

	result, err := ctl.analysis.AnalyzeFoodNutrition(c.Request.Context(), currentUserID(c), fileHeader.Filename, file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (ctl *FoodController) News(c *gin.Context) {
	item, err := ctl.news.FetchZetizenNews(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}
