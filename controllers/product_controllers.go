package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gymsupply/pos-app/models"
	"github.com/gymsupply/pos-app/utils"
	"gorm.io/gorm"
)

const productUploadDir = "public/uploads/products"

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

// GetAllProducts
func (pc *ProductController) GetAllProducts(c *gin.Context) {
	var products []models.Product
	if err := pc.DB.Preload("Category").Order("id desc").Find(&products).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of products", gin.H{
		"products": products,
	})
}

// InitForm -> data the product form needs before rendering (categories)
func (pc *ProductController) InitForm(c *gin.Context) {
	var categories []models.ProductCategory
	if err := pc.DB.Order("name").Find(&categories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product form data", gin.H{
		"categories": categories,
	})
}

// CreateProduct -> multipart form with an optional image upload
func (pc *ProductController) CreateProduct(c *gin.Context) {
	c.Request.ParseMultipartForm(10 << 20)

	fields, fieldErrors := pc.parseProductForm(c)
	if len(fieldErrors) > 0 {
		utils.RespondValidationError(c, http.StatusUnprocessableEntity, fieldErrors)
		return
	}

	var category models.ProductCategory
	if err := pc.DB.First(&category, fields.categoryID).Error; err != nil {
		utils.RespondValidationError(c, http.StatusUnprocessableEntity, map[string]string{
			"category_id": "The selected category does not exist.",
		})
		return
	}

	product := models.Product{
		CategoryID: fields.categoryID,
		Name:       fields.name,
		Price:      fields.price,
		Stock:      fields.stock,
	}

	if imageURL, err := pc.saveImage(c); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	} else if imageURL != "" {
		product.Image = &imageURL
	}

	if err := pc.DB.Create(&product).Error; err != nil {
		pc.removeImage(product.Image)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Product created", gin.H{
		"product": product,
	})
}

// GetProductByID
func (pc *ProductController) GetProductByID(c *gin.Context) {
	idStr := c.Param("product_id")
	id, _ := strconv.Atoi(idStr)

	var product models.Product
	if err := pc.DB.Preload("Category").First(&product, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product detail", gin.H{
		"product": product,
	})
}

// UpdateProduct -> multipart POST on /{id}; a new image replaces the old file
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	idStr := c.Param("product_id")
	id, _ := strconv.Atoi(idStr)

	var product models.Product
	if err := pc.DB.First(&product, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	c.Request.ParseMultipartForm(10 << 20)

	fields, fieldErrors := pc.parseProductForm(c)
	if len(fieldErrors) > 0 {
		utils.RespondValidationError(c, http.StatusUnprocessableEntity, fieldErrors)
		return
	}

	var category models.ProductCategory
	if err := pc.DB.First(&category, fields.categoryID).Error; err != nil {
		utils.RespondValidationError(c, http.StatusUnprocessableEntity, map[string]string{
			"category_id": "The selected category does not exist.",
		})
		return
	}

	oldImage := product.Image
	if imageURL, err := pc.saveImage(c); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	} else if imageURL != "" {
		product.Image = &imageURL
	}

	product.CategoryID = fields.categoryID
	product.Name = fields.name
	product.Price = fields.price
	product.Stock = fields.stock

	if err := pc.DB.Save(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if oldImage != nil && product.Image != oldImage {
		pc.removeImage(oldImage)
	}

	utils.RespondJSON(c, http.StatusOK, "Product updated", gin.H{
		"product": product,
	})
}

// DeleteProduct
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	idStr := c.Param("product_id")
	id, _ := strconv.Atoi(idStr)

	var product models.Product
	if err := pc.DB.First(&product, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := pc.DB.Delete(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	pc.removeImage(product.Image)

	utils.RespondJSON(c, http.StatusOK, "Product deleted", gin.H{"product_id": id})
}

// GetList -> typeahead search for the order entry form
func (pc *ProductController) GetList(c *gin.Context) {
	var req struct {
		Search string `json:"search"`
	}
	_ = c.ShouldBindJSON(&req)

	query := pc.DB.Model(&models.Product{})
	if req.Search != "" {
		query = query.Where("name LIKE ?", "%"+req.Search+"%")
	}

	var products []models.Product
	if err := query.Limit(10).Order("name").Find(&products).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	type option struct {
		ID    uint    `json:"id"`
		Label string  `json:"label"`
		Price float64 `json:"price"`
	}
	options := make([]option, 0, len(products))
	for _, p := range products {
		options = append(options, option{ID: p.ID, Label: p.Name, Price: p.Price})
	}

	utils.RespondJSON(c, http.StatusOK, "Product options", gin.H{
		"products": options,
	})
}

type productFormFields struct {
	name       string
	categoryID uint
	price      float64
	stock      int
}

func (pc *ProductController) parseProductForm(c *gin.Context) (productFormFields, map[string]string) {
	fields := productFormFields{}
	fieldErrors := make(map[string]string)

	fields.name = strings.TrimSpace(c.PostForm("name"))
	if fields.name == "" {
		fieldErrors["name"] = "The name field is required."
	}

	categoryID, err := strconv.ParseUint(c.PostForm("category_id"), 10, 32)
	if err != nil {
		fieldErrors["category_id"] = "The category_id field is required."
	}
	fields.categoryID = uint(categoryID)

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price < 0 {
		fieldErrors["price"] = "The price field must be a number of at least 0."
	}
	fields.price = price

	stock, err := strconv.Atoi(c.PostForm("stock"))
	if err != nil || stock < 0 {
		fieldErrors["stock"] = "The stock field must be an integer of at least 0."
	}
	fields.stock = stock

	return fields, fieldErrors
}

// saveImage stores the uploaded "image" file under the public uploads
// directory and returns its public URL. No file means no change.
func (pc *ProductController) saveImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}

	ext := strings.ToLower(file.Filename)
	if !strings.HasSuffix(ext, ".jpg") && !strings.HasSuffix(ext, ".jpeg") && !strings.HasSuffix(ext, ".png") {
		return "", errors.New("image must be a jpg or png file")
	}

	if err := os.MkdirAll(productUploadDir, 0755); err != nil {
		return "", errors.New("error creating upload directory")
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixNano(), file.Filename)
	path := fmt.Sprintf("%s/%s", productUploadDir, filename)
	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", errors.New("error saving image")
	}

	return "/uploads/products/" + filename, nil
}

func (pc *ProductController) removeImage(imageURL *string) {
	if imageURL == nil || *imageURL == "" {
		return
	}
	localPath := strings.Replace(*imageURL, "/uploads/products/", productUploadDir+"/", 1)
	if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
		utils.ErrorLogger.Printf("Error removing product image %s: %v", localPath, err)
	}
}
