package productControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/storely/storefront-api/services"
	"github.com/storely/storefront-api/utils"
)

// GET /admin/products/export-excel
func ExportProductsToExcel(svc *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.AllProducts()
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "failed to fetch products")
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "failed to create Excel sheet")
			return
		}

		headers := []string{"ID", "Name", "Description", "Price", "StockQuantity", "CategoryID", "Category"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.StockQuantity)
			row.AddCell().SetValue(p.CategoryID)
			row.AddCell().SetValue(p.Category.Name)
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		if err := file.Write(c.Writer); err != nil {
			utils.Fail(c, http.StatusInternalServerError, "failed to write Excel file")
			return
		}
	}
}

// POST /admin/products/import-excel
func ImportProductsFromExcel(svc *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Excel file is required")
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "failed to open Excel file")
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, fileHeader.Size)
		if err != nil {
			utils.Fail(c, http.StatusUnprocessableEntity, "failed to parse Excel file")
			return
		}
		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			utils.Fail(c, http.StatusUnprocessableEntity, "Excel file is empty or missing header row")
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			id, _ := strconv.ParseUint(get(0), 10, 64)
			name := get(1)
			description := get(2)
			price, priceErr := strconv.ParseFloat(get(3), 64)
			stock, stockErr := strconv.Atoi(get(4))
			categoryID, catErr := strconv.ParseUint(get(5), 10, 64)

			if name == "" || priceErr != nil || stockErr != nil || catErr != nil || price < 0 || stock < 0 {
				skippedCount++
				continue
			}

			created, err := svc.ImportProduct(uint(id), services.ProductInput{
				Name:          name,
				Description:   description,
				Price:         price,
				StockQuantity: stock,
				CategoryID:    uint(categoryID),
			})
			if err != nil {
				skippedCount++
				continue
			}
			if created {
				createdCount++
			} else {
				updatedCount++
			}
		}

		utils.OK(c, "import completed", gin.H{
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
